package user

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user.repository: user not found")

	// ErrDuplicateID возвращается, когда userID уже занят
	ErrDuplicateID = errors.New("user.repository: user id already in use")

	// ErrDuplicateUserName возвращается, когда имя пользователя уже занято
	ErrDuplicateUserName = errors.New("user.repository: user name already in use")

	// ErrDuplicatePhone возвращается, когда телефон уже занят
	ErrDuplicatePhone = errors.New("user.repository: phone number already in use")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("user.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("user.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("user.repository: failed to scan row")
)
