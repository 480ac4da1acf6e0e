// ABOUTME: Handlers for project CRUD and the project-owner lookup
// ABOUTME: Delete and edit fetch enforce ownership; update deliberately does not

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hatchboard/hatchboard/internal/auth"
	"github.com/hatchboard/hatchboard/internal/store"
)

// projectResponse is the JSON shape for a project record. Field names
// follow the collaborator schema the frontend binds to.
type projectResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      string `json:"userId"`
	CreatedAt   string `json:"created_at"`
}

// newProjectRequest is the JSON request body for POST /newproject.
type newProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      string `json:"userId"`
}

// updateProjectRequest is the JSON request body for PUT /edit/{id}.
type updateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// fetchUserProjectsRequest is the JSON request body for POST /fetchuserprojects.
type fetchUserProjectsRequest struct {
	UserID string `json:"userId"`
}

// getNameRequest is the JSON request body for POST /getname.
type getNameRequest struct {
	ProjectID string `json:"projectId"`
}

// projectUserDetails is the owner info returned by POST /getname.
type projectUserDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	ID    string `json:"id"`
}

func projectResponseFrom(p *store.Project) projectResponse {
	return projectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		UserID:      p.UserID,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func projectListFrom(projects []*store.Project) []projectResponse {
	out := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, projectResponseFrom(p))
	}
	return out
}

// handleNewProject handles POST /newproject. The route takes the owner
// from the request body and is not session-gated, matching the
// contract the frontend was built against.
func (s *Server) handleNewProject(w http.ResponseWriter, r *http.Request) {
	var req newProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	project := &store.Project{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		UserID:      req.UserID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.CreateProject(r.Context(), project); err != nil {
		s.logger.Error("creating project", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create project")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Project added successfully",
		"project": projectResponseFrom(project),
	})
}

// handleGetProject handles GET /project/{id}.
func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	project, ok := s.fetchProject(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, map[string]projectResponse{"project": projectResponseFrom(project)})
}

// handleFetchProjects handles GET /fetchprojects, newest first.
func (s *Server) handleFetchProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.store.ListProjects(r.Context())
	if err != nil {
		s.logger.Error("listing projects", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to fetch projects")
		return
	}
	respondJSON(w, http.StatusOK, map[string][]projectResponse{"projects": projectListFrom(projects)})
}

// handleFetchUserProjects handles POST /fetchuserprojects.
func (s *Server) handleFetchUserProjects(w http.ResponseWriter, r *http.Request) {
	var req fetchUserProjectsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	projects, err := s.store.ListProjectsByUser(r.Context(), req.UserID)
	if err != nil {
		s.logger.Error("listing user projects", "error", err, "user_id", req.UserID)
		respondError(w, http.StatusInternalServerError, "failed to fetch projects")
		return
	}
	respondJSON(w, http.StatusOK, map[string][]projectResponse{"projects": projectListFrom(projects)})
}

// handleDeleteProject handles DELETE /delete/{id}. Only the owner may
// delete a project.
func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	project, ok := s.fetchProject(w, r)
	if !ok {
		return
	}
	if !s.requireOwner(w, r, project) {
		return
	}

	if err := s.store.DeleteProject(r.Context(), project.ID); err != nil {
		s.logger.Error("deleting project", "error", err, "project_id", project.ID)
		respondError(w, http.StatusInternalServerError, "failed to delete project")
		return
	}
	respondMessage(w, http.StatusOK, "Project deleted successfully")
}

// handleGetProjectForEdit handles GET /edit/{id}. Only the owner may
// fetch a project for editing.
func (s *Server) handleGetProjectForEdit(w http.ResponseWriter, r *http.Request) {
	project, ok := s.fetchProject(w, r)
	if !ok {
		return
	}
	if !s.requireOwner(w, r, project) {
		return
	}
	respondJSON(w, http.StatusOK, map[string]projectResponse{"project": projectResponseFrom(project)})
}

// handleUpdateProject handles PUT /edit/{id}. The route carries no
// ownership check, matching the contract the frontend was built
// against; the GET half of the edit flow is where ownership is
// enforced.
func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	var req updateProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	id := chi.URLParam(r, "id")
	if err := s.store.UpdateProject(r.Context(), id, req.Title, req.Description); err != nil {
		if errors.Is(err, store.ErrProjectNotFound) {
			respondError(w, http.StatusNotFound, "Project not found")
			return
		}
		s.logger.Error("updating project", "error", err, "project_id", id)
		respondError(w, http.StatusInternalServerError, "failed to update project")
		return
	}
	respondMessage(w, http.StatusOK, "Project updated successfully")
}

// handleGetName handles POST /getname, resolving a project to its
// owner's contact details for the messaging UI.
func (s *Server) handleGetName(w http.ResponseWriter, r *http.Request) {
	var req getNameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	project, err := s.store.GetProject(r.Context(), req.ProjectID)
	if err != nil {
		if errors.Is(err, store.ErrProjectNotFound) {
			respondError(w, http.StatusNotFound, "Project not found")
			return
		}
		s.logger.Error("loading project", "error", err, "project_id", req.ProjectID)
		respondError(w, http.StatusInternalServerError, "failed to fetch project")
		return
	}

	owner, err := s.store.GetUser(r.Context(), project.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "Project owner not found")
			return
		}
		s.logger.Error("loading project owner", "error", err, "user_id", project.UserID)
		respondError(w, http.StatusInternalServerError, "failed to fetch project owner")
		return
	}

	respondJSON(w, http.StatusOK, map[string]projectUserDetails{
		"projectUserDetails": {Name: owner.Name, Email: owner.Email, ID: owner.ID},
	})
}

// fetchProject loads the {id} project, writing 404/500 on failure.
func (s *Server) fetchProject(w http.ResponseWriter, r *http.Request) (*store.Project, bool) {
	id := chi.URLParam(r, "id")
	project, err := s.store.GetProject(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrProjectNotFound) {
			respondError(w, http.StatusNotFound, "Project not found")
			return nil, false
		}
		s.logger.Error("loading project", "error", err, "project_id", id)
		respondError(w, http.StatusInternalServerError, "failed to fetch project")
		return nil, false
	}
	return project, true
}

// requireOwner writes 403 unless the request principal owns the project.
func (s *Server) requireOwner(w http.ResponseWriter, r *http.Request, project *store.Project) bool {
	p := auth.FromContext(r.Context())
	if p == nil || p.ID != project.UserID {
		respondError(w, http.StatusForbidden, "Forbidden")
		return false
	}
	return true
}
