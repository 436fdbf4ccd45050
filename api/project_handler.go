package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/portfolio-site/backend/database"
	"github.com/portfolio-site/backend/errs"
	"github.com/portfolio-site/backend/models"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// home renders the public landing page with the full project listing.
func (h projectHandler) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WritePageError(w, errs.NewDatabaseError("find", "projects", err))
			return
		}

		h.responder.RenderPage(w, http.StatusOK, "home.html", pageData{
			Title:    "Portfolio",
			Flash:    popFlash(w, r),
			Projects: projects,
		})
	}
}

// viewProject renders the public detail page for one project.
func (h projectHandler) viewProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WritePageError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WritePageError(w, err)
			return
		}

		h.responder.RenderPage(w, http.StatusOK, "project.html", pageData{
			Title:   project.Title,
			Flash:   popFlash(w, r),
			Project: project,
		})
	}
}

// listProjects serves the project listing as JSON for the public frontend.
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, ProjectCollection{
			Projects: projects,
			Total:    len(projects),
		})
	}
}

// dashboard renders the admin overview: total count plus the full listing.
// The route is served through the page cache, so a render within the cache
// TTL may predate recent mutations.
func (h projectHandler) dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		total, err := h.projectRepo.Count()
		if err != nil {
			h.responder.WritePageError(w, errs.NewDatabaseError("count", "projects", err))
			return
		}

		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WritePageError(w, errs.NewDatabaseError("find", "projects", err))
			return
		}

		h.responder.RenderPage(w, http.StatusOK, "dashboard.html", pageData{
			Title:    "Dashboard",
			Flash:    popFlash(w, r),
			Identity: ctxIdentity(r.Context()),
			Projects: projects,
			Total:    total,
		})
	}
}

// addProjectForm renders the empty creation form.
func (h projectHandler) addProjectForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.RenderPage(w, http.StatusOK, "add_project.html", pageData{
			Title:    "Add Project",
			Flash:    popFlash(w, r),
			Identity: ctxIdentity(r.Context()),
		})
	}
}

// addProject creates a new project from the posted form.
func (h projectHandler) addProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			h.responder.WritePageError(w, errs.NewBadRequestError("malformed form submission"))
			return
		}

		project := projectFromForm(r)
		if project.Title == "" || project.TechStack == "" {
			h.responder.RenderPage(w, http.StatusBadRequest, "add_project.html", pageData{
				Title:    "Add Project",
				Flash:    &flashMessage{Category: flashDanger, Message: "Title and tech stack are required"},
				Identity: ctxIdentity(r.Context()),
				Project:  &project,
			})
			return
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WritePageError(w, errs.NewDatabaseError("create", "project", err))
			return
		}

		setFlash(w, flashSuccess, "Project added successfully")
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
	}
}

// editProjectForm renders the form prefilled with the stored project.
func (h projectHandler) editProjectForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WritePageError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WritePageError(w, err)
			return
		}

		h.responder.RenderPage(w, http.StatusOK, "edit_project.html", pageData{
			Title:    "Edit Project",
			Flash:    popFlash(w, r),
			Identity: ctxIdentity(r.Context()),
			Project:  project,
		})
	}
}

// editProject overwrites every field of an existing project with the posted
// form values.
func (h projectHandler) editProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WritePageError(w, err)
			return
		}

		// Verify project exists
		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WritePageError(w, err)
			return
		}

		if err := r.ParseForm(); err != nil {
			h.responder.WritePageError(w, errs.NewBadRequestError("malformed form submission"))
			return
		}

		project := projectFromForm(r)
		project.ID = existing.ID
		if project.Title == "" || project.TechStack == "" {
			h.responder.RenderPage(w, http.StatusBadRequest, "edit_project.html", pageData{
				Title:    "Edit Project",
				Flash:    &flashMessage{Category: flashDanger, Message: "Title and tech stack are required"},
				Identity: ctxIdentity(r.Context()),
				Project:  &project,
			})
			return
		}

		if err := h.projectRepo.Update(&project); err != nil {
			h.responder.WritePageError(w, err)
			return
		}

		setFlash(w, flashInfo, "Project updated")
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
	}
}

// deleteProject removes a project.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WritePageError(w, err)
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WritePageError(w, err)
			return
		}

		setFlash(w, flashWarning, "Project deleted")
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
	}
}

// parseProjectID reads the projectID route parameter. A non-numeric id is
// treated the same as an unknown one.
func parseProjectID(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "projectID")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errs.NewNotFoundError("project not found")
	}
	return uint(id), nil
}

// projectFromForm maps the posted form fields onto a Project. The field
// names, including "githup", match the original templates.
func projectFromForm(r *http.Request) models.Project {
	return models.Project{
		Title:       strings.TrimSpace(r.PostFormValue("title")),
		TechStack:   strings.TrimSpace(r.PostFormValue("tech_stack")),
		Description: r.PostFormValue("description"),
		ImageURL:    strings.TrimSpace(r.PostFormValue("image_url")),
		LiveLink:    strings.TrimSpace(r.PostFormValue("live_link")),
		GithubLink:  strings.TrimSpace(r.PostFormValue("githup")),
	}
}
