package users

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("users: user not found")

	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("users: invalid credentials")

	// ErrDuplicateID возвращается, когда userID уже занят
	ErrDuplicateID = errors.New("users: user id already in use")

	// ErrDuplicateUserName возвращается, когда имя пользователя уже занято
	ErrDuplicateUserName = errors.New("users: user name already in use")

	// ErrDuplicatePhone возвращается, когда телефон уже занят
	ErrDuplicatePhone = errors.New("users: phone number already in use")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("users: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("users: internal error")
)
