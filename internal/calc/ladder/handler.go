package ladder

import (
	"encoding/json"
	"net/http"
)

type Handler struct {
	Calc *Calculator
}

func NewHandler() *Handler {
	return &Handler{Calc: New(DefaultConfig())}
}

func (h *Handler) CalcAll(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res := h.Calc.CalculateAll(input)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
