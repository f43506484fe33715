package controller

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/model"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/repository"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/service"
	apperrors "github.com/Rajeshpandey9807/radhira-pos-backend/internal/errors"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Image uploads above this size are rejected before touching the
// database.
const maxImageBytes = 5 << 20

type BusinessProfileController struct {
	profileService service.BusinessProfileService
}

func NewBusinessProfileController(profileService service.BusinessProfileService) *BusinessProfileController {
	return &BusinessProfileController{profileService: profileService}
}

// BusinessProfileForm is the multipart save payload. The logo and
// signature arrive as file parts named "logo" and "signature";
// omitting a file part keeps whatever is already stored.
type BusinessProfileForm struct {
	Name            string `form:"name" binding:"required,min=1,max=200"`
	Email           string `form:"email" binding:"omitempty,email"`
	Phone           string `form:"phone"`
	GSTNumber       string `form:"gst_number"`
	PANNumber       string `form:"pan_number"`
	Notes           string `form:"notes"`
	BusinessTypeIDs string `form:"business_type_ids"` // comma separated

	BillingAddress string `form:"billing_address"`
	City           string `form:"city"`
	PostalCode     string `form:"postal_code"`
	StateID        *uint  `form:"state_id"`
}

// Get returns the newest saved profile, or an empty payload when none
// exists yet
// GET /api/v1/business-profile
func (ctrl *BusinessProfileController) Get(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	profile, err := ctrl.profileService.GetLatest()
	if err != nil {
		log.Error("Failed to load business profile", err)
		apperrors.InternalError(c, "Failed to load business profile")
		return
	}

	if profile == nil {
		apperrors.OK(c, "", gin.H{"profile": nil})
		return
	}

	apperrors.OK(c, "", gin.H{"profile": profile})
}

// Save creates or updates the profile aggregate
// POST /api/v1/business-profile
func (ctrl *BusinessProfileController) Save(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var form BusinessProfileForm
	if err := c.ShouldBind(&form); err != nil {
		apperrors.BadRequest(c, "Invalid profile payload", bindingFieldErrors(err))
		return
	}

	typeIDs, err := parseTypeIDs(form.BusinessTypeIDs)
	if err != nil {
		apperrors.BadRequest(c, "Invalid profile payload", map[string][]string{
			"business_type_ids": {"must be a comma separated list of ids"},
		})
		return
	}

	profile := &model.BusinessProfile{
		Name:            form.Name,
		Email:           form.Email,
		Phone:           form.Phone,
		GSTNumber:       form.GSTNumber,
		PANNumber:       form.PANNumber,
		Notes:           form.Notes,
		BusinessTypeIDs: typeIDs,
	}

	if form.BillingAddress != "" || form.City != "" || form.PostalCode != "" || form.StateID != nil {
		profile.Address = &model.BusinessAddress{
			BillingAddress: form.BillingAddress,
			City:           form.City,
			PostalCode:     form.PostalCode,
			StateID:        form.StateID,
		}
	}

	if ok := ctrl.readUpload(c, "logo", func(name, contentType string, data []byte) {
		profile.LogoName = name
		profile.LogoContentType = contentType
		profile.LogoData = data
	}); !ok {
		return
	}
	if ok := ctrl.readUpload(c, "signature", func(name, contentType string, data []byte) {
		profile.SignatureName = name
		profile.SignatureContentType = contentType
		profile.SignatureData = data
	}); !ok {
		return
	}

	actorID, _ := middleware.GetUserID(c)
	profileID, err := ctrl.profileService.Save(profile, actorID)
	if err != nil {
		log.Error("Failed to save business profile", err)
		apperrors.InternalError(c, "Failed to save business profile")
		return
	}

	log.Info("Business profile saved", map[string]interface{}{
		"profile_id": profileID,
	})
	apperrors.OK(c, "Business profile saved", gin.H{"profile_id": profileID})
}

// Logo streams the stored logo
// GET /api/v1/business-profile/:id/logo
func (ctrl *BusinessProfileController) Logo(c *gin.Context) {
	ctrl.serveBinary(c, ctrl.profileService.GetLogo)
}

// Signature streams the stored signature
// GET /api/v1/business-profile/:id/signature
func (ctrl *BusinessProfileController) Signature(c *gin.Context) {
	ctrl.serveBinary(c, ctrl.profileService.GetSignature)
}

func (ctrl *BusinessProfileController) serveBinary(
	c *gin.Context,
	fetch func(int64) (*repository.BinaryPayload, error),
) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	payload, err := fetch(int64(id))
	if err != nil {
		log.Error("Failed to load image", err, map[string]interface{}{"profile_id": id})
		apperrors.InternalError(c, "Failed to load image")
		return
	}
	if payload == nil || len(payload.Data) == 0 {
		apperrors.NotFound(c, "No image stored")
		return
	}

	if payload.FileName != "" {
		c.Header("Content-Disposition", `inline; filename="`+payload.FileName+`"`)
	}
	c.Data(http.StatusOK, payload.ContentType, payload.Data)
}

// readUpload reads an optional file part and hands its bytes to set.
// Returns false after responding when the part is present but
// unreadable or too large.
func (ctrl *BusinessProfileController) readUpload(
	c *gin.Context,
	field string,
	set func(name, contentType string, data []byte),
) bool {
	file, err := c.FormFile(field)
	if err != nil {
		// Absent part means keep the stored image.
		return true
	}
	if file.Size > maxImageBytes {
		apperrors.BadRequest(c, "Image too large", map[string][]string{
			field: {"must be 5MB or smaller"},
		})
		return false
	}

	data, err := readMultipartFile(file)
	if err != nil {
		apperrors.BadRequest(c, "Unreadable image upload", map[string][]string{
			field: {"could not be read"},
		})
		return false
	}

	set(file.Filename, file.Header.Get("Content-Type"), data)
	return true
}

func readMultipartFile(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(src)
}

// parseTypeIDs parses a comma separated id list, ignoring blanks.
func parseTypeIDs(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
