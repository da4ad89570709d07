package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/pawsteady/pba-grader/internal/grading"
	"github.com/pawsteady/pba-grader/internal/submission"

	"github.com/go-chi/chi/v5"
)

// GradeHandler grades a set of answers without storing anything.
// POST /grade  { "answers": { "q1": "...", ... } }
func GradeHandler(normalize grading.Normalizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Answers grading.Answers `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		results := grading.GradeSubmission(r.Context(), req.Answers, normalize)
		verdict, flagged := grading.Decide(results)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": results,
			"verdict": verdict,
			"flagged": flagged,
		})
	}
}

// CreateSubmissionHandler grades and stores a submission.
// POST /submissions  { "student_name": "...", "student_email": "...", "answers": {...} }
func CreateSubmissionHandler(svc *submission.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			StudentName  string          `json:"student_name"`
			StudentEmail string          `json:"student_email"`
			Answers      grading.Answers `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if req.StudentName == "" {
			http.Error(w, "student_name required", 400)
			return
		}
		s, err := svc.Create(r.Context(), req.StudentName, req.StudentEmail, req.Answers)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(s)
	}
}

func GetSubmissionHandler(svc *submission.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "submissionID")
		s, err := svc.Get(id)
		if err != nil {
			if errors.Is(err, submission.ErrNotFound) {
				http.Error(w, err.Error(), 404)
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(s)
	}
}

// ListSubmissionsHandler returns stored submissions, newest first.
// GET /submissions?limit=50&offset=0
func ListSubmissionsHandler(svc *submission.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		list, err := svc.List(limit, offset)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if list == nil {
			list = []submission.Submission{}
		}
		_ = json.NewEncoder(w).Encode(list)
	}
}

// QuestionsHandler exposes the question set and labels for form builders.
// GET /questions
func QuestionsHandler() http.HandlerFunc {
	type question struct {
		ID    string `json:"id"`
		Label string `json:"label"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		out := make([]question, 0, len(grading.QuestionIDs))
		for _, id := range grading.QuestionIDs {
			out = append(out, question{ID: id, Label: grading.QuestionLabels[id]})
		}
		_ = json.NewEncoder(w).Encode(out)
	}
}

func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}
