package folders

import (
	"errors"

	"dexsearch/internal/api"
)

// Messages holds the user-facing fallback text for each failing action.
type Messages struct {
	Load   string
	Add    string
	Update string
	Delete string
	Index  string
}

// MessagesCS are the Czech strings the web UI ships with.
var MessagesCS = Messages{
	Load:   "Chyba při načítání složek",
	Add:    "Chyba při přidávání složky",
	Update: "Chyba při aktualizaci složky",
	Delete: "Chyba při odstraňování složky",
	Index:  "Chyba při spouštění indexace",
}

// MessagesEN is the English catalog.
var MessagesEN = Messages{
	Load:   "Failed to load folders",
	Add:    "Failed to add folder",
	Update: "Failed to update folder",
	Delete: "Failed to remove folder",
	Index:  "Failed to start indexing",
}

// MessagesFor returns the catalog for locale ("cs" or "en"), defaulting to Czech.
func MessagesFor(locale string) Messages {
	if locale == "en" {
		return MessagesEN
	}
	return MessagesCS
}

// For returns the fallback text of action.
func (m Messages) For(action Action) string {
	switch action {
	case ActionLoad:
		return m.Load
	case ActionAdd:
		return m.Add
	case ActionUpdate:
		return m.Update
	case ActionDelete:
		return m.Delete
	case ActionIndex:
		return m.Index
	}
	return ""
}

// describe returns the backend's own reason when it sent one, otherwise fallback.
func describe(err error, fallback string) string {
	if detail := api.Detail(err); detail != "" {
		return detail
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Error()
	}
	return fallback
}
