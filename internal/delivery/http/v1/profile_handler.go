package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
	uploader  *Uploader
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase, uploader *Uploader) {
	handler := &ProfileHandler{profileUC: profileUC, uploader: uploader}

	profile := protected.Group("/profile")
	{
		profile.GET("", handler.GetOwn)
		profile.PUT("", handler.Upsert)
		profile.GET("/:id", handler.GetByID)
	}

	user := protected.Group("/user")
	{
		user.GET("/me", handler.Me)
		user.PUT("/me", handler.UpdateMe)
	}
}

// ProfileRequest replaces the caller's profile document. Name and email
// update the account when present.
type ProfileRequest struct {
	Name       string     `json:"name" binding:"max=100,valid_name,no_emoji"`
	Email      string     `json:"email" binding:"omitempty,email,max=254"`
	Phone      string     `json:"phone" binding:"valid_phone"`
	Headline   string     `json:"headline" binding:"max=200"`
	Location   string     `json:"location" binding:"max=200"`
	Github     string     `json:"github" binding:"omitempty,url,max=300"`
	Linkedin   string     `json:"linkedin" binding:"omitempty,url,max=300"`
	Bio        string     `json:"bio" binding:"max=5000"`
	Skills     StringList `json:"skills"`
	Languages  StringList `json:"languages"`
	Experience string     `json:"experience" binding:"max=5000"`
	Education  string     `json:"education" binding:"max=5000"`
}

type UpdateMeRequest struct {
	Name  string `form:"name" binding:"max=100,valid_name,no_emoji"`
	Email string `form:"email" binding:"omitempty,email,max=254"`
}

// GetProfile godoc
// @Summary      Get own profile
// @Description  Returns an empty object when no profile was saved yet
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /profile [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetOwn(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	profile, err := h.profileUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile", profile)
}

// GetProfileByID godoc
// @Summary      Get a user's profile
// @Description  Read-only view used by recruiters to inspect applicants
// @Tags         profile
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profile/{id} [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetByID(c *gin.Context) {
	profile, err := h.profileUC.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile", profile)
}

// UpsertProfile godoc
// @Summary      Save own profile
// @Description  Replaces the whole profile document; the uploaded resume reference and the account avatar are kept
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body      ProfileRequest  true  "Profile"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /profile [put]
// @Security     BearerAuth
func (h *ProfileHandler) Upsert(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	view, err := h.profileUC.UpsertProfile(c.Request.Context(), userID, domain.ProfileInput{
		Name:  req.Name,
		Email: req.Email,
		Profile: domain.Profile{
			Phone:      req.Phone,
			Headline:   req.Headline,
			Location:   req.Location,
			Github:     req.Github,
			Linkedin:   req.Linkedin,
			Bio:        req.Bio,
			Skills:     req.Skills,
			Languages:  req.Languages,
			Experience: req.Experience,
			Education:  req.Education,
		},
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile saved", view)
}

// Me godoc
// @Summary      Current account
// @Tags         user
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /user/me [get]
// @Security     BearerAuth
func (h *ProfileHandler) Me(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	user, err := h.profileUC.GetMe(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Current user", user)
}

// UpdateMe godoc
// @Summary      Update current account
// @Tags         user
// @Accept       multipart/form-data
// @Produce      json
// @Param        name          formData  string  false  "Name"
// @Param        email         formData  string  false  "Email"
// @Param        profileImage  formData  file    false  "Avatar image"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /user/me [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req UpdateMeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	avatar, err := h.uploader.Save(c, "profileImage", security.UploadImage)
	if err != nil {
		c.Error(err)
		return
	}

	user, err := h.profileUC.UpdateMe(c.Request.Context(), userID, domain.MeInput{
		Name:   req.Name,
		Email:  req.Email,
		Avatar: avatar,
	})
	if err != nil {
		h.uploader.Discard(c.Request.Context(), avatar)
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Account updated", user)
}
