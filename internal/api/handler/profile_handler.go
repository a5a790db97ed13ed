package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/profiledesk/profile-directory/internal/core/domain"
	"github.com/profiledesk/profile-directory/internal/core/ports"
)

// ProfileHandler serves the directory CRUD endpoints.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func listResponse(profiles []*domain.Profile) profileListResponse {
	if profiles == nil {
		profiles = []*domain.Profile{}
	}
	return profileListResponse{Success: true, Profiles: profiles, Count: len(profiles)}
}

// List handles GET /api/profiles.
//
// @Summary      List all profiles, newest first
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  profileListResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/profiles [get]
func (h *ProfileHandler) List(c echo.Context) error {
	profiles, err := h.service.ListProfiles(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse(profiles))
}

// Search handles GET /api/profiles/search?q=.
//
// @Summary      Search profiles by name, email or role
// @Tags         profiles
// @Produce      json
// @Param        q    query     string  false  "Case-insensitive substring; empty lists everything"
// @Success      200  {object}  profileListResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/profiles/search [get]
func (h *ProfileHandler) Search(c echo.Context) error {
	profiles, err := h.service.SearchProfiles(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse(profiles))
}

// Get handles GET /api/profiles/:id.
//
// @Summary      Get a profile
// @Tags         profiles
// @Produce      json
// @Param        id   path      string  true  "Profile id"
// @Success      200  {object}  profileResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/profiles/{id} [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	p, err := h.service.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileResponse{Success: true, Profile: p})
}

// Create handles POST /api/profiles.
//
// @Summary      Create a profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        body  body      createProfileRequest  true  "Profile fields"
// @Success      201   {object}  profileResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/profiles [post]
func (h *ProfileHandler) Create(c echo.Context) error {
	var req createProfileRequest
	if err := c.Bind(&req); err != nil {
		return domain.Errorf(domain.ErrValidation, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	p, err := h.service.CreateProfile(c.Request().Context(), ports.CreateProfileInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
		Bio:   req.Bio,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, profileResponse{
		Success: true,
		Message: "Profile created successfully",
		Profile: p,
	})
}

// Update handles PUT /api/profiles/:id.
//
// @Summary      Update fields of a profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        id    path      string                true  "Profile id"
// @Param        body  body      updateProfileRequest  true  "Fields to change; omitted fields are kept"
// @Success      200   {object}  profileResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /api/profiles/{id} [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return domain.Errorf(domain.ErrValidation, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	p, err := h.service.UpdateProfile(c.Request().Context(), c.Param("id"), ports.UpdateProfileInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
		Bio:   req.Bio,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{
		Success: true,
		Message: "Profile updated successfully",
		Profile: p,
	})
}

// Delete handles DELETE /api/profiles/:id.
//
// @Summary      Delete a profile
// @Tags         profiles
// @Produce      json
// @Security     SessionToken
// @Param        id   path      string  true  "Profile id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/profiles/{id} [delete]
func (h *ProfileHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteProfile(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "Profile deleted successfully"})
}
