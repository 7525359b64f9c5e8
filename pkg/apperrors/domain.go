package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для доменных ошибок.
Сервисы возвращают их напрямую, хендлеры отдают через HandleError.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Auth ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid token",
	http.StatusUnauthorized,
)

var ErrTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"Token expired",
	http.StatusUnauthorized,
)

var ErrNoToken = New(
	CodeUnauthorized,
	"auth",
	"No token, authorization denied",
	http.StatusUnauthorized,
)

// ErrNotAuthenticated - операция требует аутентифицированного субъекта
var ErrNotAuthenticated = New(
	CodeUnauthorized,
	"auth",
	"Not authenticated",
	http.StatusUnauthorized,
)

// ErrInsufficientPermissions - субъект не вправе выполнить действие
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Users ---

// ErrEmailAlreadyExists отдается как 400, а не 409: так исторически ждет фронтенд
var ErrEmailAlreadyExists = New(
	CodeEmailAlreadyExists,
	"user",
	"User already exists",
	http.StatusBadRequest,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

var ErrInvalidUserRole = New(
	CodeInvalidRole,
	"user",
	"Invalid role",
	http.StatusBadRequest,
)

var ErrInvalidUserID = New(
	CodeBadRequest,
	"user",
	"Invalid user id",
	http.StatusBadRequest,
)

// --- Follows ---

var ErrCannotFollowSelf = New(
	CodeSelfAction,
	"follow",
	"You cannot follow yourself",
	http.StatusBadRequest,
)

// --- Bookings ---

var ErrBookingNotFound = New(
	CodeNotFound,
	"booking",
	"Booking not found",
	http.StatusNotFound,
)

var ErrExpertNotFound = New(
	CodeNotFound,
	"booking",
	"Expert not found",
	http.StatusNotFound,
)

var ErrCannotBookSelf = New(
	CodeSelfAction,
	"booking",
	"You cannot book a session with yourself",
	http.StatusBadRequest,
)

var ErrInvalidBookingStatus = New(
	CodeInvalidStatus,
	"booking",
	"Invalid booking status",
	http.StatusBadRequest,
)

var ErrInvalidBookingTransition = New(
	CodeInvalidTransition,
	"booking",
	"Booking status cannot be changed",
	http.StatusConflict,
)

var ErrInvalidBookingID = New(
	CodeBadRequest,
	"booking",
	"Invalid booking id",
	http.StatusBadRequest,
)

// --- Startups ---

var ErrStartupNotFound = New(
	CodeNotFound,
	"startup",
	"Startup not found",
	http.StatusNotFound,
)

var ErrInvalidStartupID = New(
	CodeBadRequest,
	"startup",
	"Invalid startup id",
	http.StatusBadRequest,
)

// --- Communities ---

var ErrCommunityNotFound = New(
	CodeNotFound,
	"community",
	"Community not found",
	http.StatusNotFound,
)

var ErrCommunityNameTaken = New(
	CodeAlreadyExists,
	"community",
	"Community name already taken",
	http.StatusConflict,
)

var ErrInviteNotFound = New(
	CodeNotFound,
	"community",
	"Invite not found",
	http.StatusNotFound,
)

var ErrCannotInviteSelf = New(
	CodeSelfAction,
	"community",
	"You cannot invite yourself",
	http.StatusBadRequest,
)

// ErrInviteAlreadyPending - у приглашенного уже есть ожидающий инвайт в это сообщество
var ErrInviteAlreadyPending = New(
	CodeConflict,
	"community",
	"User already has a pending invite to this community",
	http.StatusConflict,
)

// ErrInviteAlreadySent - этот инвайтер уже приглашал этого пользователя
var ErrInviteAlreadySent = New(
	CodeAlreadyExists,
	"community",
	"You have already invited this user to this community",
	http.StatusConflict,
)

var ErrInviteNotPending = New(
	CodeInvalidTransition,
	"community",
	"Invite is no longer pending",
	http.StatusConflict,
)

var ErrInvalidInviteStatus = New(
	CodeInvalidStatus,
	"community",
	"Invalid invite response",
	http.StatusBadRequest,
)

// --- Uploads & Files ---

var ErrFileRequired = New(
	CodeFileRequired,
	"upload",
	"No file uploaded",
	http.StatusBadRequest,
)

var ErrFileTooLarge = New(
	CodeFileTooLarge,
	"upload",
	"File is too large",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeUnsupportedMediaType,
	"upload",
	"Unsupported file type",
	http.StatusUnsupportedMediaType,
)

var ErrFileProcessing = New(
	CodeInternalError,
	"upload",
	"Failed to process file",
	http.StatusInternalServerError,
)
