package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
)

type createFolderRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type deleteFolderResponse struct {
	Message       string `json:"message"`
	DetachedNotes int64  `json:"detachedNotes"`
}

func (s *Server) handleListFolders(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	folders, err := s.folders.List(r.Context(), userID)
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		writeError(w, err)
		return
	}
	if folders == nil {
		folders = []*models.Folder{}
	}
	writeJSON(w, http.StatusOK, folders)
}

func (s *Server) handleCreateFolder(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var req createFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrorValidation)
		return
	}

	folder, err := s.folders.Create(r.Context(), userID, req.Name, req.Color)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, folder)
}

func (s *Server) handleDeleteFolder(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	detached, err := s.folders.Delete(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteFolderResponse{
		Message:       "Folder deleted successfully",
		DetachedNotes: detached,
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	url, err := s.export.ExportNotes(r.Context(), userID)
	if err != nil {
		s.logger.Error(r.Context(), err.Error())
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		URL string `json:"url"`
	}{URL: url})
}
