package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// DBContextKey - ключ, по которому в context хранится *gorm.DB (пул или транзакция)
const DBContextKey = contextKey("db")

// SubjectContextKey - ключ для auth.Subject аутентифицированного пользователя
const SubjectContextKey = contextKey("subject")
