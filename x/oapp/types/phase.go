package types

// Phase names the step a single message exchange is in. Phases are not
// persisted; they label events and log lines.
type Phase string

const (
	PhaseIdle            Phase = "idle"
	PhaseQuoting         Phase = "quoting"
	PhaseSent            Phase = "sent"
	PhaseReceiving       Phase = "receiving"
	PhaseProcessed       Phase = "processed"
	PhaseCallbackSending Phase = "callback_sending"
	PhaseCallbackSent    Phase = "callback_sent"
)

func (p Phase) String() string { return string(p) }
