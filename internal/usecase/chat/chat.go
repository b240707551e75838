package chat

import (
	"context"
	"strings"
	"time"
)

type Message struct {
	Role string    `json:"role"` // "user" or "bot"
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// HistoryStore keeps per-session conversation history. Sessions are
// explicit: the caller passes the session id, there is no module-level
// conversation state.
type HistoryStore interface {
	Append(ctx context.Context, sessionID string, m Message) error
	List(ctx context.Context, sessionID string) ([]Message, error)
}

type Usecase struct{ store HistoryStore }

func NewUsecase(s HistoryStore) *Usecase { return &Usecase{store: s} }

type ReplyDTO struct {
	SessionID string    `json:"session_id"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// Process answers one message with keyword intent matching and records both
// sides of the exchange under the session.
func (u *Usecase) Process(ctx context.Context, sessionID, message string) (*ReplyDTO, error) {
	msg := strings.ToLower(strings.TrimSpace(message))
	response := respond(msg)
	now := time.Now().UTC()

	if u.store != nil {
		if err := u.store.Append(ctx, sessionID, Message{Role: "user", Text: message, At: now}); err != nil {
			return nil, err
		}
		if err := u.store.Append(ctx, sessionID, Message{Role: "bot", Text: response, At: now}); err != nil {
			return nil, err
		}
	}
	return &ReplyDTO{SessionID: sessionID, Response: response, Timestamp: now}, nil
}

func (u *Usecase) History(ctx context.Context, sessionID string) ([]Message, error) {
	if u.store == nil {
		return nil, nil
	}
	return u.store.List(ctx, sessionID)
}

func respond(msg string) string {
	switch {
	case containsAny(msg, "hello", "hi", "hey"):
		return "Hi! Ask me about credit scores, EMI calculations, DTI, or credit utilization."
	case containsAny(msg, "credit score", "score", "rating"):
		if containsAny(msg, "improve", "increase", "boost") {
			return "To improve your score: pay every bill on time, keep credit utilization below 30%, reduce your DTI below 40%, and pay down existing loans. Payment history has the biggest single impact."
		}
		if containsAny(msg, "category", "range") {
			return "Scores run 300-850. 750+ is Excellent, 670-749 Good, 580-669 Fair, below 580 Poor. Check your Dashboard for your current category."
		}
		return "Your credit score is computed from five factors: income stability, debt-to-income ratio, existing loan burden, credit utilization, and payment history. Use the calculator to see your breakdown."
	case containsAny(msg, "emi", "installment", "amortization"):
		return "EMI is your fixed monthly installment: P·r·(1+r)^n / ((1+r)^n − 1), with r the monthly rate. Try the EMI calculator for a full month-by-month schedule."
	case containsAny(msg, "dti", "debt-to-income", "expenses"):
		return "DTI is monthly expenses divided by monthly income. Keep it below 40% — below 30% is excellent and frees up disposable income."
	case containsAny(msg, "utilization", "credit card", "limit"):
		return "Credit utilization is how much of your available credit you use. Keep it below 30% of your limit; under 10% scores best."
	case containsAny(msg, "loan", "borrow"):
		return "Before borrowing, check your existing loan burden: total loans above 3x your annual income start to hurt your score. The what-if simulator shows the impact of a new loan."
	default:
		return "I can help with credit scores, EMI calculations, DTI, credit utilization, and loans. What would you like to know?"
	}
}

func containsAny(msg string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(msg, k) {
			return true
		}
	}
	return false
}
