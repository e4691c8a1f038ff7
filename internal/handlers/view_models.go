package handlers

import (
	"hanguldrill/internal/dictation"
	"hanguldrill/internal/levels"
	"hanguldrill/internal/models"
)

type SetupViewData struct {
	Title   string
	Levels  []levels.Level
	Records map[string]*models.Record
	Error   string
}

type PlayViewData struct {
	Title      string
	LevelTitle string
	Position   int // 1-based
	Total      int
	Score      int
	Answer     string
	TTSEnabled bool
}

type ResultViewData struct {
	Title   string
	Summary dictation.Summary
	Record  *models.Record
	LevelID string
}
