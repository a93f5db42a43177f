package constants

// Centralized constants for headers, env keys and OpenAI integration.
const (
	// Environment variable keys
	EnvOpenAIAPIKey = "OPENAI_API_KEY"
	EnvConfigPath   = "RPSPLUS_CONFIG"
	EnvDBPath       = "RPSPLUS_DB"

	// HTTP headers and content types
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"

	ContentTypeJSON = "application/json"

	// Authorization prefix
	BearerPrefix = "Bearer "

	// OpenAI API endpoints and base URL
	OpenAIBaseURL             = "https://api.openai.com"
	OpenAIChatCompletionsPath = "/v1/chat/completions"

	// OpenAI model and parameters used for move classification. Low
	// temperature keeps rule enforcement consistent.
	OpenAIChatModel   = "gpt-4o-mini"
	OpenAITemperature = 0.1
)

// Routes used by the backend router
const (
	RouteAPIPrefix     = "/api"
	RouteGames         = "/games"
	RouteGameBySession = "/games/:sessionID"
	RouteGamePlay      = "/games/:sessionID/play"
	RouteRules         = "/rules"
	RouteHealth        = "/health"
	RouteVersion       = "/version"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest     = "Invalid request"
	ErrInvalidSessionID   = "Invalid session ID"
	ErrSessionNotFound    = "Session not found. Start a new game first."
	ErrSessionExists      = "Session already exists. Delete it first or use a different ID."
	ErrGameAlreadyOver    = "Game is already over. Start a new game."
	ErrMaxRoundsRange     = "max_rounds must be between 1 and 20"
	ErrEmptyUserInput     = "user_input is required"
	ErrJudgeNotConfigured = "AI Judge not configured. Please set OPENAI_API_KEY in environment."
	ErrFailedCreateGame   = "Failed to create game session"
	ErrFailedFetchGame    = "Failed to fetch game session"
	ErrFailedEndGame      = "Failed to end game session"
	ErrFailedListGames    = "Failed to list game sessions"
	ErrFailedPlayMove     = "Failed to play move"
)

// Logging field names
const (
	LogFieldSessionID = "session_id"
	LogFieldRound     = "round"
	LogFieldWinner    = "winner"
	LogFieldMove      = "move"
	LogFieldAddr      = "addr"
)
