// Package workflow описывает допустимые статусы для каждого вида записей.
//
// Переходы не упорядочены: любой статус из перечисления может быть заменен
// любым другим (в том числе обратно, например Resolved -> Active). Кто может
// менять статус, определяет список ролей операции в HTTP-слое.
package workflow

import (
	"errors"
	"fmt"
	"strings"
)

// Kind - вид записи со статусом
type Kind string

const (
	KindDistressSignal  Kind = "distress_signal"
	KindResourceRequest Kind = "resource_request"
	KindVolunteerTask   Kind = "volunteer_task"
	KindIncident        Kind = "incident"
)

// Статусы сигналов SOS
const (
	SignalActive     = "Active"
	SignalInProgress = "In Progress"
	SignalResolved   = "Resolved"
)

// Статусы запросов ресурсов
const (
	RequestPending  = "Pending"
	RequestApproved = "Approved"
	RequestDeclined = "Declined"
)

// Статусы задач волонтеров
const (
	TaskAssigned   = "Assigned"
	TaskInProgress = "In Progress"
	TaskCompleted  = "Completed"
)

// Статусы инцидентов
const (
	IncidentReported   = "Reported"
	IncidentInProgress = "In Progress"
	IncidentResolved   = "Resolved"
)

// ErrInvalidStatus возвращается, если статус не входит в перечисление вида
var ErrInvalidStatus = errors.New("invalid status")

// Workflow - фиксированный набор статусов вида записи. Первый статус - статус по умолчанию.
type Workflow struct {
	kind     Kind
	statuses []string
}

var workflows = map[Kind]Workflow{
	KindDistressSignal:  {kind: KindDistressSignal, statuses: []string{SignalActive, SignalInProgress, SignalResolved}},
	KindResourceRequest: {kind: KindResourceRequest, statuses: []string{RequestPending, RequestApproved, RequestDeclined}},
	KindVolunteerTask:   {kind: KindVolunteerTask, statuses: []string{TaskAssigned, TaskInProgress, TaskCompleted}},
	KindIncident:        {kind: KindIncident, statuses: []string{IncidentReported, IncidentInProgress, IncidentResolved}},
}

// For возвращает описание статусов вида. Неизвестный вид - ошибка программиста.
func For(kind Kind) Workflow {
	w, ok := workflows[kind]
	if !ok {
		panic(fmt.Sprintf("workflow: unknown kind %q", kind))
	}
	return w
}

func (w Workflow) Kind() Kind {
	return w.kind
}

// Default возвращает статус, который получает новая запись
func (w Workflow) Default() string {
	return w.statuses[0]
}

// Statuses возвращает копию перечисления статусов
func (w Workflow) Statuses() []string {
	out := make([]string, len(w.statuses))
	copy(out, w.statuses)
	return out
}

// Contains проверяет принадлежность статуса перечислению (с учетом регистра)
func (w Workflow) Contains(status string) bool {
	for _, s := range w.statuses {
		if s == status {
			return true
		}
	}
	return false
}

// Validate возвращает ErrInvalidStatus со списком допустимых значений
func (w Workflow) Validate(status string) error {
	if w.Contains(status) {
		return nil
	}
	return fmt.Errorf("%w %q for %s: must be one of %s", ErrInvalidStatus, status, w.kind, strings.Join(w.statuses, ", "))
}

// CanTransition сообщает, можно ли заменить статус from на to.
// Порядок не навязывается: достаточно, чтобы оба статуса были из перечисления.
func (w Workflow) CanTransition(from, to string) error {
	if err := w.Validate(from); err != nil {
		return err
	}
	return w.Validate(to)
}
