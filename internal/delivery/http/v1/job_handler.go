package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC    domain.JobUsecase
	uploader *Uploader
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase, uploader *Uploader) {
	handler := &JobHandler{jobUC: jobUC, uploader: uploader}

	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.List)
		publicJobs.GET("/:id", handler.GetDetails)
	}

	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.GET("/my-jobs", handler.ListMine)
		protectedJobs.POST("", handler.Create)
		protectedJobs.PUT("/:id", handler.Update)
		protectedJobs.DELETE("/:id", handler.Delete)
	}
}

// CreateJobRequest is sent as multipart form data so a logo can ride along.
// Skills is a comma separated list.
type CreateJobRequest struct {
	Title       string `form:"title" binding:"max=200"`
	Company     string `form:"company" binding:"max=200"`
	Location    string `form:"location" binding:"max=200"`
	Salary      string `form:"salary" binding:"max=100"`
	Description string `form:"description" binding:"max=10000"`
	Type        string `form:"type" binding:"max=50"`
	Experience  string `form:"experience" binding:"max=100"`
	Skills      string `form:"skills" binding:"max=1000"`
}

// StringList decodes either a JSON array of strings or a comma separated string.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		var out []string
		for _, item := range items {
			if s := strings.TrimSpace(item); s != "" {
				out = append(out, s)
			}
		}
		*l = out
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*l = domain.SplitList(s)
	return nil
}

// UpdateJobRequest is a partial update: empty fields are ignored.
type UpdateJobRequest struct {
	Title       string     `json:"title" binding:"max=200"`
	Company     string     `json:"company" binding:"max=200"`
	Location    string     `json:"location" binding:"max=200"`
	Salary      string     `json:"salary" binding:"max=100"`
	Description string     `json:"description" binding:"max=10000"`
	Type        string     `json:"type" binding:"max=50"`
	Experience  string     `json:"experience" binding:"max=100"`
	Skills      StringList `json:"skills"`
}

// CreateJob godoc
// @Summary      Create a new job
// @Description  Create a job posting owned by the caller. Any authenticated role may post.
// @Tags         jobs
// @Accept       multipart/form-data
// @Produce      json
// @Param        title        formData  string  false  "Title"
// @Param        company      formData  string  false  "Company"
// @Param        location     formData  string  false  "Location"
// @Param        salary       formData  string  false  "Salary"
// @Param        description  formData  string  false  "Description"
// @Param        type         formData  string  false  "Type"
// @Param        experience   formData  string  false  "Experience"
// @Param        skills       formData  string  false  "Comma separated skills"
// @Param        logo         formData  file    false  "Company logo"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req CreateJobRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	logo, err := h.uploader.Save(c, "logo", security.UploadImage)
	if err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobUC.CreateJob(c.Request.Context(), userID, domain.JobInput{
		Title:       strings.TrimSpace(req.Title),
		Company:     strings.TrimSpace(req.Company),
		Location:    strings.TrimSpace(req.Location),
		Salary:      strings.TrimSpace(req.Salary),
		Description: req.Description,
		Type:        strings.TrimSpace(req.Type),
		Experience:  strings.TrimSpace(req.Experience),
		Skills:      domain.SplitList(req.Skills),
		Logo:        logo,
	})
	if err != nil {
		h.uploader.Discard(c.Request.Context(), logo)
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// ListJobs godoc
// @Summary      List jobs
// @Description  Newest first. search matches title, company, skills or description; location narrows further.
// @Tags         jobs
// @Produce      json
// @Param        search    query     string  false  "Text filter"
// @Param        location  query     string  false  "Location filter"
// @Success      200       {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	filter := domain.JobFilter{
		Search:   strings.TrimSpace(c.Query("search")),
		Location: strings.TrimSpace(c.Query("location")),
	}

	jobs, err := h.jobUC.ListJobs(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", jobs)
}

// ListMyJobs godoc
// @Summary      List my jobs
// @Description  Jobs posted by the caller, newest first
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /jobs/my-jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListMine(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	jobs, err := h.jobUC.ListMyJobs(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "My jobs", jobs)
}

// GetJobDetails godoc
// @Summary      Get job details
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	job, err := h.jobUC.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

// UpdateJob godoc
// @Summary      Update a job
// @Description  Partial update by the owner. Empty fields are ignored and cannot clear a value.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      string            true  "Job ID"
// @Param        job  body      UpdateJobRequest  true  "Fields to change"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	job, err := h.jobUC.UpdateJob(c.Request.Context(), c.Param("id"), userID, domain.JobPatch{
		Title:       strings.TrimSpace(req.Title),
		Company:     strings.TrimSpace(req.Company),
		Location:    strings.TrimSpace(req.Location),
		Salary:      strings.TrimSpace(req.Salary),
		Description: req.Description,
		Type:        strings.TrimSpace(req.Type),
		Experience:  strings.TrimSpace(req.Experience),
		Skills:      req.Skills,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", job)
}

// DeleteJob godoc
// @Summary      Delete a job
// @Description  Permanent removal by the owner. Applications to the job are kept.
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.jobUC.DeleteJob(c.Request.Context(), c.Param("id"), userID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted", nil)
}
