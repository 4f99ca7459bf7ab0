package config

import "time"

// Colors
const (
	ErrorColor       = 0xFF0000
	SuccessColor     = 0x00FF00
	InfoColor        = 0x0099FF
	WarningColor     = 0xFFAA00
	ShopColor        = 0x3498DB
	LeaderboardColor = 0xFFD700
	QuizColor        = 0x8E44AD
)

// Timeouts
const (
	DefaultQueryTimeout     = 5 * time.Second
	CommandExecutionTimeout = 10 * time.Second
	SlowCommandThreshold    = 2 * time.Second
	MembershipTimeout       = 2 * time.Second
	ShutdownTimeout         = 10 * time.Second
)

// Quiz catalog browsing
const (
	QuestionsPerPage = 20
)

// Shop layout
const (
	ButtonsPerRow = 5
)
