package quotes

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/mail"
	"strconv"
	"time"

	"inkpress/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// SubmitQuote accepts the quote form as multipart data with any number of
// reference files under the "files" field.
func (h *Handler) SubmitQuote(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	// uploads can take a while on slow links
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		log.Println("SubmitQuote parse error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	in := CreateInput{
		CustomerName:       r.FormValue("customerName"),
		CustomerEmail:      r.FormValue("customerEmail"),
		CustomerPhone:      r.FormValue("customerPhone"),
		Company:            r.FormValue("company"),
		ProjectDescription: r.FormValue("projectDescription"),
		Deadline:           r.FormValue("deadline"),
	}

	if len(in.CustomerName) < 2 {
		utils.RespondWithError(w, http.StatusBadRequest, "Name must be at least 2 characters")
		return
	}
	if _, err := mail.ParseAddress(in.CustomerEmail); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid email address")
		return
	}
	if len(in.ProjectDescription) < 20 {
		utils.RespondWithError(w, http.StatusBadRequest, "Please provide more details about your project")
		return
	}
	if qty := r.FormValue("quantity"); qty != "" {
		n, err := strconv.Atoi(qty)
		if err != nil || n < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid quantity value")
			return
		}
		in.Quantity = n
	}

	var files []File
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["files"] {
			files = append(files, File{
				Name: header.Filename,
				Size: header.Size,
				Open: func() (io.ReadCloser, error) {
					f, err := header.Open()
					if err != nil {
						return nil, err
					}
					return f, nil
				},
			})
		}
	}

	quote, err := h.Service.Create(ctx, in, files)
	if err != nil {
		if errors.Is(err, ErrInvalidFile) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, ErrNoRecord) {
			log.Println("SubmitQuote invariant violation:", err)
		} else {
			log.Println("SubmitQuote error:", err)
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Quote submission failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, quote)
}
