package controller

import "errors"

var (
	ErrParseRequest = errors.New("failed to parse request")

	ErrUserRegister  = errors.New("failed to register user")
	ErrGenerateToken = errors.New("failed to generate token")
	ErrUserLogin     = errors.New("failed to login")

	ErrCreateSession      = errors.New("failed to create a review session")
	ErrGetSessions        = errors.New("failed to get review sessions")
	ErrDeleteSession      = errors.New("failed to delete a review session")
	ErrGetSessionMessages = errors.New("failed to get session messages")
	ErrUpdateSessionTitle = errors.New("failed to update session title")

	ErrFetchProfile    = errors.New("could not fetch profile data")
	ErrAnalysisFailed  = errors.New("the analysis engine failed to process the profile")
	ErrAnalysisGeneric = errors.New("failed to run profile analysis")
	ErrAnalysisEmpty   = errors.New("analysis finished without producing a report")
	ErrFollowupFailed  = errors.New("failed to process follow-up question")
)
