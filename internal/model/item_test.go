package model

import "testing"

func TestValidStatus(t *testing.T) {
	if !ValidStatus(StatusLost) || !ValidStatus(StatusFound) {
		t.Error("expected lost and found to be valid statuses")
	}
	if ValidStatus("misplaced") || ValidStatus("") {
		t.Error("expected unknown statuses to be invalid")
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		if !ValidCategory(c) {
			t.Errorf("expected %q to be valid", c)
		}
	}
	if ValidCategory("Electelectronics") {
		t.Error("expected the misspelled category to be invalid")
	}
	if ValidCategory(CategoryAny) {
		t.Error("the Any sentinel is a search value, not a category")
	}
}
