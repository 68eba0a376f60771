package handlers

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"

	"insure-backend/internal/models"
	"insure-backend/internal/services"
	"insure-backend/pkg/utils"

	"github.com/gorilla/mux"
)

const maxLogoSize = 2 << 20 // 2 MB

var allowedLogoTypes = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/svg+xml": ".svg",
	"image/webp":    ".webp",
}

type CompanyHandler struct {
	Service *services.CompanyService
}

func NewCompanyHandler(s *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{Service: s}
}

func (h *CompanyHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	company, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusCreated, company)
}

// ListCompanies returns all companies; ?active=true narrows to active ones.
// The public site uses the active filter for its partner strip.
func (h *CompanyHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	companies, err := h.Service.List(r.Context(), activeOnly)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if companies == nil {
		companies = []*models.InsuranceCompany{}
	}
	utils.JSON(w, http.StatusOK, companies)
}

func (h *CompanyHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	company, err := h.Service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, company)
}

func (h *CompanyHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	company, err := h.Service.Update(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, company)
}

func (h *CompanyHandler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"message": "company deleted"})
}

// UploadLogo accepts a multipart "logo" file, stores it and records the URL.
func (h *CompanyHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxLogoSize); err != nil {
		utils.Error(w, http.StatusBadRequest, "logo must be a multipart upload under 2MB")
		return
	}
	file, header, err := r.FormFile("logo")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "logo file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	ext, ok := allowedLogoTypes[contentType]
	if !ok {
		// Fall back to the filename extension for clients that send a
		// generic content type.
		ext = strings.ToLower(filepath.Ext(header.Filename))
		switch ext {
		case ".png":
			contentType = "image/png"
		case ".jpg", ".jpeg":
			contentType = "image/jpeg"
		case ".svg":
			contentType = "image/svg+xml"
		case ".webp":
			contentType = "image/webp"
		default:
			utils.Error(w, http.StatusBadRequest, "logo must be png, jpeg, svg or webp")
			return
		}
	}

	url, err := h.Service.UploadLogo(r.Context(), mux.Vars(r)["id"], ext, contentType, file)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"logo_url": url})
}
