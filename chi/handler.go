package chi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/fwojciec/urlsum"
)

// User-facing messages.
const (
	MsgInvalidURL         = "Please enter a valid URL."
	MsgFetchFailed        = "Error fetching content: "
	MsgNoContent          = "No content found to summarize."
	MsgSummarizeFailed    = "Summarization failed."
	MsgSummarizeSucceeded = "Summarization successful!"
	MsgChunksFailed       = "%d of %d chunks failed to summarize. The summary leaves out their text."
	MsgInvalidRating      = "Please choose a rating between 1 and 5 stars."
	MsgRatingThanks       = "Thank you for the rating 🗿"
	MsgNotifyFailed       = " (Email notification failed)"
)

// page is the data rendered by the index template.
type page struct {
	URL     string
	Summary *urlsum.Summary
	Success string
	Warning string
	Error   string
	Rating  string

	Stars    []int
	FileName string
}

func newPage() *page {
	p := &page{FileName: urlsum.SummaryFileName}
	for n := urlsum.MinStars; n <= urlsum.MaxStars; n++ {
		p.Stars = append(p.Stars, n)
	}
	return p
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, newPage())
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	p := newPage()
	p.URL = strings.TrimSpace(r.PostFormValue("url"))

	if p.URL == "" {
		p.Warning = MsgInvalidURL
		s.render(w, r, http.StatusBadRequest, p)
		return
	}

	summary, err := s.SummaryService.SummarizeURL(r.Context(), p.URL)
	if err != nil {
		status, msg := summarizeError(err)
		if status == http.StatusBadRequest {
			p.Warning = msg
		} else {
			p.Error = msg
		}
		if status == http.StatusInternalServerError {
			s.Logger.Error("summarize", "url", p.URL, "err", err)
		}
		s.render(w, r, status, p)
		return
	}

	p.Summary = summary
	p.Success = MsgSummarizeSucceeded
	if summary.Failed > 0 {
		p.Warning = fmt.Sprintf(MsgChunksFailed, summary.Failed, summary.Chunks)
	}
	s.render(w, r, http.StatusOK, p)
}

// summarizeError maps a pipeline error to a status code and message.
func summarizeError(err error) (int, string) {
	switch urlsum.ErrorCode(err) {
	case urlsum.EINVALID:
		return http.StatusBadRequest, MsgInvalidURL
	case urlsum.EFETCH:
		return http.StatusBadGateway, MsgFetchFailed + urlsum.ErrorMessage(err)
	case urlsum.ENOCONTENT:
		return http.StatusUnprocessableEntity, MsgNoContent
	case urlsum.EEMPTYSUMMARY:
		return http.StatusBadGateway, MsgSummarizeFailed
	default:
		return http.StatusInternalServerError, MsgSummarizeFailed
	}
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	summary := r.PostFormValue("summary")
	if strings.TrimSpace(summary) == "" {
		http.Error(w, "summary required", http.StatusBadRequest)
		return
	}

	// Browsers submit textarea line breaks as CRLF.
	summary = strings.ReplaceAll(summary, "\r\n", "\n")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+urlsum.SummaryFileName+`"`)
	_, _ = w.Write([]byte(summary))
}

func (s *Server) handleRate(w http.ResponseWriter, r *http.Request) {
	p := newPage()

	stars, err := strconv.Atoi(r.PostFormValue("stars"))
	if err != nil {
		p.Warning = MsgInvalidRating
		s.render(w, r, http.StatusBadRequest, p)
		return
	}

	_, err = urlsum.SubmitRating(r.Context(), stars, s.RatingService, s.Notifier)
	switch urlsum.ErrorCode(err) {
	case "":
		p.Rating = MsgRatingThanks
	case urlsum.ENOTIFY:
		s.Logger.Warn("rating notification", "stars", stars, "err", urlsum.ErrorMessage(err))
		p.Rating = MsgRatingThanks + MsgNotifyFailed
	case urlsum.EINVALID:
		p.Warning = MsgInvalidRating
		s.render(w, r, http.StatusBadRequest, p)
		return
	default:
		s.Logger.Error("rating", "stars", stars, "err", err)
		p.Error = "Could not record the rating."
		s.render(w, r, http.StatusInternalServerError, p)
		return
	}

	s.render(w, r, http.StatusOK, p)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, p *page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, p); err != nil {
		s.Logger.Error("render", "path", r.URL.Path, "err", err)
	}
}
