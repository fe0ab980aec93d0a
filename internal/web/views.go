package web

import "github.com/campuslf/lostfound/internal/model"

// ItemView wraps an item with render-time state for the card template.
// A recorded image may have disappeared from disk; the card then shows a
// placeholder instead of failing.
type ItemView struct {
	model.Item
	HasImage     bool
	ImageMissing bool
	ShowActions  bool
}

// itemViews resolves image existence for a list of items.
func (s *Server) itemViews(items []model.Item, showActions bool) []ItemView {
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		v := ItemView{Item: item, ShowActions: showActions}
		if item.ImagePath != "" {
			if s.Images.Exists(item.ImagePath) {
				v.HasImage = true
			} else {
				v.ImageMissing = true
			}
		}
		views = append(views, v)
	}
	return views
}
