package editor

// FormMode is the state of the single add/edit form.
type FormMode int

const (
	FormIdle FormMode = iota
	FormAdding
	FormEditing
)

func (m FormMode) String() string {
	switch m {
	case FormAdding:
		return "adding"
	case FormEditing:
		return "editing"
	default:
		return "idle"
	}
}

// FormState is the form mode plus, when editing, the item being edited.
type FormState struct {
	Mode      FormMode
	EditingID string
}
