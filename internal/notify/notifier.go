package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vishnupriya759285/velookara/internal/model"
	"github.com/vishnupriya759285/velookara/internal/queue"
	"github.com/vishnupriya759285/velookara/internal/worker"
)

// JobTimeout 每個通知工作的逾時
const JobTimeout = 10 * time.Second

const (
	EventIssueCreated        = "issue.created"
	EventIssueStatusChanged  = "issue.status_changed"
	EventIssueAssigned       = "issue.assigned"
	EventRegistrationCreated = "event.registration_created"
)

// Notifier 在領域事件發生後通知外部，不回傳錯誤也不阻塞請求
type Notifier interface {
	IssueCreated(issue model.Issue)
	IssueStatusChanged(issue model.Issue, previous model.IssueStatus)
	IssueAssigned(issue model.Issue)
	RegistrationCreated(event model.Event, reg model.Registration)
}

// Recorder 記錄通知結果，通常由 metrics 實作
type Recorder interface {
	ObserveNotification(kind, result string)
}

type Dispatcher struct {
	pool      worker.Pool
	publisher queue.Publisher
	mailer    Mailer
	recorder  Recorder
	logger    *slog.Logger
	timeout   time.Duration
}

func NewDispatcher(pool worker.Pool, publisher queue.Publisher, mailer Mailer, recorder Recorder, logger *slog.Logger) *Dispatcher {
	if publisher == nil {
		publisher = queue.Nop{}
	}
	if mailer == nil {
		mailer = NopMailer{}
	}
	return &Dispatcher{
		pool:      pool,
		publisher: publisher,
		mailer:    mailer,
		recorder:  recorder,
		logger:    logger,
		timeout:   JobTimeout,
	}
}

type issuePayload struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	Status     string `json:"status"`
	Priority   string `json:"priority"`
	ReportedBy string `json:"reported_by"`
	AssignedTo string `json:"assigned_to,omitempty"`
	Previous   string `json:"previous_status,omitempty"`
}

func newIssuePayload(i model.Issue) issuePayload {
	p := issuePayload{
		ID:         i.ID.String(),
		Title:      i.Title,
		Category:   string(i.Category),
		Status:     string(i.Status),
		Priority:   string(i.Priority),
		ReportedBy: i.ReportedBy.String(),
	}
	if i.AssignedTo != nil {
		p.AssignedTo = i.AssignedTo.String()
	}
	return p
}

func (d *Dispatcher) IssueCreated(issue model.Issue) {
	d.dispatch(EventIssueCreated, newIssuePayload(issue), &Mail{
		To:      issue.ReporterEmail,
		Subject: fmt.Sprintf("[Velookara] Issue received: %s", issue.Title),
		Body: fmt.Sprintf("Hello %s,\n\nYour issue \"%s\" has been received and is now %s.\nReference: %s\n",
			issue.ReporterName, issue.Title, issue.Status, issue.ID),
	})
}

func (d *Dispatcher) IssueStatusChanged(issue model.Issue, previous model.IssueStatus) {
	payload := newIssuePayload(issue)
	payload.Previous = string(previous)
	d.dispatch(EventIssueStatusChanged, payload, &Mail{
		To:      issue.ReporterEmail,
		Subject: fmt.Sprintf("[Velookara] Issue %s: %s", issue.Status, issue.Title),
		Body: fmt.Sprintf("Hello %s,\n\nThe status of your issue \"%s\" changed from %s to %s.\nReference: %s\n",
			issue.ReporterName, issue.Title, previous, issue.Status, issue.ID),
	})
}

func (d *Dispatcher) IssueAssigned(issue model.Issue) {
	var mail *Mail
	if issue.AssigneeEmail != nil {
		name := ""
		if issue.AssigneeName != nil {
			name = *issue.AssigneeName
		}
		mail = &Mail{
			To:      *issue.AssigneeEmail,
			Subject: fmt.Sprintf("[Velookara] Issue assigned: %s", issue.Title),
			Body: fmt.Sprintf("Hello %s,\n\nThe issue \"%s\" (%s, %s priority) at %s has been assigned to you.\nReference: %s\n",
				name, issue.Title, issue.Category, issue.Priority, issue.Location, issue.ID),
		}
	}
	d.dispatch(EventIssueAssigned, newIssuePayload(issue), mail)
}

type registrationPayload struct {
	ID           string `json:"id"`
	EventID      string `json:"event_id"`
	EventTitle   string `json:"event_title"`
	Name         string `json:"name"`
	NumAttendees int    `json:"num_attendees"`
}

func (d *Dispatcher) RegistrationCreated(event model.Event, reg model.Registration) {
	var mail *Mail
	if reg.Email != nil {
		mail = &Mail{
			To:      *reg.Email,
			Subject: fmt.Sprintf("[Velookara] Registration confirmed: %s", event.Title),
			Body: fmt.Sprintf("Hello %s,\n\nYou are registered for \"%s\" on %s at %s (%d attendee(s)).\n",
				reg.Name, event.Title, event.EventDate.Format("2006-01-02 15:04"), event.Venue, reg.NumAttendees),
		}
	}
	d.dispatch(EventRegistrationCreated, registrationPayload{
		ID:           reg.ID.String(),
		EventID:      event.ID.String(),
		EventTitle:   event.Title,
		Name:         reg.Name,
		NumAttendees: reg.NumAttendees,
	}, mail)
}

// dispatch 排入背景工作；佇列滿時直接丟棄並記錄
func (d *Dispatcher) dispatch(kind string, payload any, mail *Mail) {
	ok := d.pool.TrySubmit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		result := "ok"
		if err := d.publisher.Publish(ctx, kind, payload); err != nil {
			result = "error"
			d.logger.Error("publish notification failed", slog.String("kind", kind), slog.Any("error", err))
		}
		if mail != nil {
			if err := d.mailer.Send(ctx, *mail); err != nil {
				result = "error"
				d.logger.Error("send notification email failed", slog.String("kind", kind), slog.Any("error", err))
			}
		}
		d.observe(kind, result)
	})
	if !ok {
		d.logger.Warn("notification queue full, dropped", slog.String("kind", kind))
		d.observe(kind, "dropped")
	}
}

func (d *Dispatcher) observe(kind, result string) {
	if d.recorder != nil {
		d.recorder.ObserveNotification(kind, result)
	}
}

// Nop 不做任何事
type Nop struct{}

func (Nop) IssueCreated(model.Issue)                            {}
func (Nop) IssueStatusChanged(model.Issue, model.IssueStatus)   {}
func (Nop) IssueAssigned(model.Issue)                           {}
func (Nop) RegistrationCreated(model.Event, model.Registration) {}
