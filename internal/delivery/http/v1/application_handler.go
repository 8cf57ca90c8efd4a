package v1

import (
	"net/http"
	"strings"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	appUC    domain.ApplicationUsecase
	uploader *Uploader
}

func NewApplicationHandler(protected *gin.RouterGroup, appUC domain.ApplicationUsecase, uploader *Uploader) {
	handler := &ApplicationHandler{appUC: appUC, uploader: uploader}

	applications := protected.Group("/applications")
	{
		applications.POST("", handler.Apply)
		applications.GET("", handler.List)
		applications.GET("/export", middleware.RequireRole(domain.RoleRecruiter), handler.Export)
	}
}

type ApplyRequest struct {
	JobID string `form:"jobId" json:"jobId"`
}

// ApplyJob godoc
// @Summary      Apply to a job
// @Description  Requires a saved profile. One application per job and applicant.
// @Tags         applications
// @Accept       multipart/form-data
// @Produce      json
// @Param        jobId   formData  string  true   "Job ID"
// @Param        resume  formData  file    false  "Resume (pdf, doc, docx)"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req ApplyRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	jobID := strings.TrimSpace(req.JobID)
	if jobID == "" {
		c.Error(apperror.Validation("Job ID is required"))
		return
	}

	resume, err := h.uploader.Save(c, "resume", security.UploadResume)
	if err != nil {
		c.Error(err)
		return
	}
	var resumeRef *string
	if resume != "" {
		resumeRef = &resume
	}

	app, err := h.appUC.Apply(c.Request.Context(), jobID, userID, resumeRef)
	if err != nil {
		h.uploader.Discard(c.Request.Context(), resume)
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// scopeFor maps the scope query value to a listing scope for the caller.
func scopeFor(value, userID string) (domain.ApplicationScope, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "all":
		return domain.ScopeAll(), true
	case "mine":
		return domain.ScopeJobOwner(userID), true
	case "applied":
		return domain.ScopeApplicant(userID), true
	}
	return domain.ApplicationScope{}, false
}

// ListApplications godoc
// @Summary      List applications
// @Description  scope=all (default) lists every application, mine those to the caller's jobs, applied the caller's own.
// @Tags         applications
// @Produce      json
// @Param        scope  query     string  false  "all, mine or applied"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	scope, ok := scopeFor(c.Query("scope"), userID)
	if !ok {
		c.Error(apperror.Validation("scope must be all, mine or applied"))
		return
	}

	apps, err := h.appUC.List(c.Request.Context(), scope)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications", apps)
}

// ExportApplications godoc
// @Summary      Export applicants
// @Description  xlsx workbook of applications to the caller's jobs (recruiters only)
// @Tags         applications
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    file
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /applications/export [get]
// @Security     BearerAuth
func (h *ApplicationHandler) Export(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	data, filename, err := h.appUC.ExportForOwner(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
