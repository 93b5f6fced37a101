package http

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"property-plan/domain"
	"property-plan/service"
)

type TermComparisonHandler struct {
	service *service.TermComparisonService
}

func NewTermComparisonHandler(service *service.TermComparisonService) *TermComparisonHandler {
	return &TermComparisonHandler{service: service}
}

func (h *TermComparisonHandler) CompareTerms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Validar Content-Type
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.TermComparisonInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CompareTerms(input)
	if err != nil {
		log.Printf("Error comparing terms: %v", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
