// Package docs регистрирует OpenAPI-описание для gin-swagger.
// Аннотации живут в internal/handlers; после их правки документ пересобирается `swag init -g cmd/web/main.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Регистрация", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Вход по email и паролю", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/auth/me": {"get": {"tags": ["auth"], "summary": "Текущий пользователь", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/users": {"get": {"tags": ["users"], "summary": "Пользователи по роли (до 50)", "responses": {"200": {"description": "OK"}}}},
        "/users/search": {"get": {"tags": ["users"], "summary": "Поиск по имени, био и навыкам (до 20)", "responses": {"200": {"description": "OK"}}}},
        "/users/{id}": {"get": {"tags": ["users"], "summary": "Профиль пользователя", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/users/{id}/follow-stats": {"get": {"tags": ["follows"], "summary": "Счетчики подписчиков и подписок", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/users/{id}/follow": {
            "post": {"tags": ["follows"], "summary": "Подписаться (идемпотентно)", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["follows"], "summary": "Отписаться", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/users/me": {"put": {"tags": ["users"], "summary": "Частичное обновление профиля", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/users/me/role": {"post": {"tags": ["users"], "summary": "Сменить активную роль", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/users/me/avatar": {"post": {"tags": ["users"], "summary": "Загрузить аватар", "security": [{"BearerAuth": []}], "consumes": ["multipart/form-data"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "413": {"description": "Request Entity Too Large"}, "415": {"description": "Unsupported Media Type"}}}},
        "/users/me/verification-banner/dismiss": {"post": {"tags": ["users"], "summary": "Скрыть баннер верификации на N дней", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/follows/mine": {"get": {"tags": ["follows"], "summary": "ID пользователей, на которых подписан текущий", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/bookings": {"post": {"tags": ["bookings"], "summary": "Запросить сессию с экспертом", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}},
        "/bookings/mine": {"get": {"tags": ["bookings"], "summary": "Мои брони", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/bookings/{id}/status": {"patch": {"tags": ["bookings"], "summary": "Сменить статус брони", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}}},
        "/startups": {"post": {"tags": ["startups"], "summary": "Создать стартап", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}},
        "/startups/{startupId}": {"get": {"tags": ["startups"], "summary": "Стартап по ID", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/startups/{startupId}/matches": {"get": {"tags": ["startups"], "summary": "Эксперты для стартапа (до 10)", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/communities": {"post": {"tags": ["communities"], "summary": "Создать сообщество", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}},
        "/communities/{id}/invites": {"post": {"tags": ["communities"], "summary": "Пригласить пользователя в сообщество", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}},
        "/invites/mine": {"get": {"tags": ["communities"], "summary": "Входящие инвайты", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/invites/{id}/accept": {"post": {"tags": ["communities"], "summary": "Принять инвайт", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}},
        "/invites/{id}/decline": {"post": {"tags": ["communities"], "summary": "Отклонить инвайт", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}},
        "/invites/{id}/cancel": {"post": {"tags": ["communities"], "summary": "Отозвать свой инвайт", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "NextIgnition API",
	Description:      "Бэкенд платформы для фаундеров, экспертов и инвесторов",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
