package handlers

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"sync"

	"hanguldrill/internal/audio"
	"hanguldrill/internal/dictation"
	"hanguldrill/internal/levels"
	"hanguldrill/internal/service"
)

// QuizHandler handles the dictation quiz HTTP surface: the setup, play
// and result screens plus the JSON endpoints the play screen calls.
type QuizHandler struct {
	quizService   *service.QuizService
	recordService *service.RecordService
	ttsService    *audio.TTSService // nil when playback is disabled
	templates     *template.Template

	mu sync.Mutex
	// Finished summaries kept until the player leaves the result
	// screen, and whether the no-speech notice was already shown.
	results     map[string]*dictation.Summary
	ttsNotified map[string]bool
}

// NewQuizHandler creates a new quiz handler. ttsService may be nil;
// typing, grading and navigation work fully without playback.
func NewQuizHandler(quizService *service.QuizService, recordService *service.RecordService, ttsService *audio.TTSService, templates *template.Template) *QuizHandler {
	return &QuizHandler{
		quizService:   quizService,
		recordService: recordService,
		ttsService:    ttsService,
		templates:     templates,
		results:       make(map[string]*dictation.Summary),
		ttsNotified:   make(map[string]bool),
	}
}

// Home shows level selection with each level's saved record.
func (h *QuizHandler) Home(w http.ResponseWriter, r *http.Request) {
	records, err := h.recordService.ReadAll()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Failed to read records", err)
		return
	}

	data := SetupViewData{
		Title:   "받아쓰기 연습",
		Levels:  levels.All(),
		Records: records,
	}
	h.render(w, "setup.tmpl", data)
}

// StartQuiz begins a session for the chosen level.
func (h *QuizHandler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	playerID := GetPlayerFromContext(r.Context())
	levelID := r.FormValue("level")

	if _, err := h.quizService.Start(playerID, levelID); err != nil {
		if errors.Is(err, service.ErrLevelNotFound) {
			h.render(w, "setup.tmpl", SetupViewData{
				Title:  "받아쓰기 연습",
				Levels: levels.All(),
				Error:  "급수 데이터를 찾을 수 없어요.",
			})
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to start session", "", err)
		return
	}

	h.mu.Lock()
	delete(h.results, playerID)
	h.mu.Unlock()

	http.Redirect(w, r, "/quiz/play", http.StatusSeeOther)
}

// ShowPlay displays the current question of the active session.
func (h *QuizHandler) ShowPlay(w http.ResponseWriter, r *http.Request) {
	playerID := GetPlayerFromContext(r.Context())

	sess, err := h.quizService.Session(playerID)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	levelTitle := sess.LevelID
	if lvl := levels.Get(sess.LevelID); lvl != nil {
		levelTitle = lvl.Title
	}

	data := PlayViewData{
		Title:      "받아쓰기 진행 중",
		LevelTitle: levelTitle,
		Position:   sess.Index + 1,
		Total:      sess.Len(),
		Score:      sess.Score,
		Answer:     sess.Answers[sess.Index],
		TTSEnabled: h.ttsService != nil,
	}
	h.render(w, "play.tmpl", data)
}

// RecordAnswer stores the raw transcription without grading (the play
// screen saves drafts on navigation).
func (h *QuizHandler) RecordAnswer(w http.ResponseWriter, r *http.Request) {
	playerID := GetPlayerFromContext(r.Context())

	if err := h.quizService.RecordAnswer(playerID, r.FormValue("answer")); err != nil {
		respondWithError(w, http.StatusBadRequest, "No active session", "", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SubmitAnswer grades the transcription at the current index.
func (h *QuizHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	playerID := GetPlayerFromContext(r.Context())

	result, err := h.quizService.Submit(playerID, r.FormValue("answer"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "No active session", "", err)
		return
	}

	sess, err := h.quizService.Session(playerID)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "No active session", "", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"isCorrect":  result.Correct,
		"targetText": result.Target,
		"score":      result.Score,
		"delta":      result.Delta,
		"position":   sess.Index + 1,
		"total":      sess.Len(),
		"canFinish":  sess.AtLastQuestion() && sess.LastGraded(),
	})
}

// Move navigates to the previous or next question.
func (h *QuizHandler) Move(w http.ResponseWriter, r *http.Request) {
	playerID := GetPlayerFromContext(r.Context())

	dir, err := strconv.Atoi(r.FormValue("dir"))
	if err != nil || (dir != 1 && dir != -1) {
		respondWithError(w, http.StatusBadRequest, "Invalid direction", "", nil)
		return
	}

	idx, err := h.quizService.Move(playerID, dir)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "No active session", "", err)
		return
	}

	sess, _ := h.quizService.Session(playerID)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"position": idx + 1,
		"total":    sess.Len(),
		"answer":   sess.Answers[idx],
		"score":    sess.Score,
	})
}

// Speak returns the audio URL for the current sentence. With playback
// disabled it responds with a one-time notice; grading is unaffected.
func (h *QuizHandler) Speak(w http.ResponseWriter, r *http.Request) {
	playerID := GetPlayerFromContext(r.Context())
	repeat := r.FormValue("repeat") == "1"

	text, err := h.quizService.Speak(playerID, repeat)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "No active session", "", err)
		return
	}

	if h.ttsService == nil {
		notice := ""
		h.mu.Lock()
		if !h.ttsNotified[playerID] {
			h.ttsNotified[playerID] = true
			notice = "음성 재생을 지원하지 않는 환경이에요. 문장은 계속 풀 수 있어요."
		}
		h.mu.Unlock()
		respondJSON(w, http.StatusServiceUnavailable, map[string]interface{}{"notice": notice})
		return
	}

	rate, err := strconv.ParseFloat(r.FormValue("rate"), 64)
	if err != nil {
		rate = 1.0
	}

	filename, err := h.ttsService.AudioFile(text, rate)
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "Failed to fetch audio", "TTS fetch failed", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"audio": "/audio/" + filename})
}

// FinishQuiz finalizes the session and stores the summary for the
// result screen. Finishing before the last question is graded is a
// caller error unless forced.
func (h *QuizHandler) FinishQuiz(w http.ResponseWriter, r *http.Request) {
	playerID := GetPlayerFromContext(r.Context())
	force := r.FormValue("force") == "1"

	summary, err := h.quizService.Finish(playerID, force)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionIncomplete):
			respondWithError(w, http.StatusConflict, "Last question not graded yet", "", nil)
		case errors.Is(err, service.ErrNoActiveSession):
			respondWithError(w, http.StatusBadRequest, "No active session", "", nil)
		default:
			// Record write failed; the summary still stands, so show
			// it rather than losing the player's run.
			respondWithError(w, http.StatusInternalServerError, "Failed to save record", "", err)
			return
		}
		return
	}

	h.mu.Lock()
	h.results[playerID] = &summary
	h.mu.Unlock()

	http.Redirect(w, r, "/quiz/result", http.StatusSeeOther)
}

// ShowResult displays the finished session's summary.
func (h *QuizHandler) ShowResult(w http.ResponseWriter, r *http.Request) {
	playerID := GetPlayerFromContext(r.Context())

	h.mu.Lock()
	summary := h.results[playerID]
	h.mu.Unlock()
	if summary == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	record, err := h.recordService.Read(summary.LevelID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Failed to read record", err)
		return
	}

	data := ResultViewData{
		Title:   "받아쓰기 결과",
		Summary: *summary,
		Record:  record,
		LevelID: summary.LevelID,
	}
	h.render(w, "result.tmpl", data)
}

// Retry starts a fresh session on the level just played.
func (h *QuizHandler) Retry(w http.ResponseWriter, r *http.Request) {
	playerID := GetPlayerFromContext(r.Context())

	h.mu.Lock()
	summary := h.results[playerID]
	h.mu.Unlock()
	if summary == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if _, err := h.quizService.Start(playerID, summary.LevelID); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to restart session", "", err)
		return
	}

	h.mu.Lock()
	delete(h.results, playerID)
	h.mu.Unlock()

	http.Redirect(w, r, "/quiz/play", http.StatusSeeOther)
}

// GoHome abandons any active session and returns to setup.
func (h *QuizHandler) GoHome(w http.ResponseWriter, r *http.Request) {
	playerID := GetPlayerFromContext(r.Context())

	h.quizService.Abandon(playerID)
	h.mu.Lock()
	delete(h.results, playerID)
	h.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *QuizHandler) render(w http.ResponseWriter, name string, data interface{}) {
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Failed to render "+name, err)
	}
}
