package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
	"github.com/dmitrijs2005/notekeeper/internal/server/services"
)

type createNoteRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	FolderID *string  `json:"folderId"`
	Tags     []string `json:"tags"`
}

// updateNoteRequest decodes a partial note update. folderId needs
// "absent" and "null" kept apart, so unmarshalling records key presence.
type updateNoteRequest struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	FolderID    *string  `json:"folderId"`
	folderIDSet bool
}

func (r *updateNoteRequest) UnmarshalJSON(b []byte) error {
	type plain updateNoteRequest
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(b, &keys); err != nil {
		return err
	}

	*r = updateNoteRequest(p)
	_, r.folderIDSet = keys["folderId"]
	return nil
}

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	notes, err := s.notes.List(r.Context(), userID)
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		writeError(w, err)
		return
	}
	if notes == nil {
		notes = []*models.Note{}
	}
	writeJSON(w, http.StatusOK, notes)
}

func (s *Server) handleGetNote(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	note, err := s.notes.Get(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var req createNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrorValidation)
		return
	}

	note, err := s.notes.Create(r.Context(), userID, services.CreateNoteInput{
		Title:    req.Title,
		Content:  req.Content,
		FolderID: req.FolderID,
		Tags:     req.Tags,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrorValidation)
		return
	}

	note, err := s.notes.Update(r.Context(), userID, r.PathValue("id"), services.NotePatch{
		Title:       req.Title,
		Content:     req.Content,
		Tags:        req.Tags,
		FolderID:    req.FolderID,
		FolderIDSet: req.folderIDSet,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.notes.Delete(r.Context(), userID, r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Note deleted successfully"})
}

func (s *Server) handleSearchNotes(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	notes, err := s.notes.Search(r.Context(), userID, r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	if notes == nil {
		notes = []*models.Note{}
	}
	writeJSON(w, http.StatusOK, notes)
}
