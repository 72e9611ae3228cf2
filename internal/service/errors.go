package service

import "errors"

// Ошибки доменного уровня. Хэндлеры сопоставляют их с HTTP-статусами через
// errors.Is, ничего не зная о деталях хранилища.
var (
	// ErrValidation - нарушение предусловия, отклоняется до любой мутации
	ErrValidation = errors.New("validation failed")

	// ErrCapacityExceeded - конкурентное вступление заняло последнее место.
	// Восстанавливается повторным подбором и никогда не доходит до пользователя.
	ErrCapacityExceeded = errors.New("circle capacity exceeded")

	// ErrNotAMember - операция от участника без активного членства в круге
	ErrNotAMember = errors.New("not an active member of this circle")

	// ErrCircleNotFound - круг не существует или деактивирован
	ErrCircleNotFound = errors.New("circle not found")

	// ErrMemberNotFound - членство не найдено (повторный выход - no-op, это другое)
	ErrMemberNotFound = errors.New("member not found")

	// ErrMessageNotFound - сообщение не найдено в данном круге
	ErrMessageNotFound = errors.New("message not found")

	// ErrNotMessageSender - редактировать сообщение может только отправитель
	ErrNotMessageSender = errors.New("only the sender can edit a message")
)
