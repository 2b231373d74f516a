package card

// IntentKind is the action a user requested from a card
type IntentKind string

const (
	IntentCopySecret     IntentKind = "copy-passphrase"
	IntentCopyIdentifier IntentKind = "copy-text"
	IntentNavigate       IntentKind = "navigate"
)

// Intent is emitted by a view on user action.
// Value is the account id, or the identifier text for IntentCopyIdentifier.
type Intent struct {
	Kind  IntentKind
	Value string
}

// IntentHandler receives intents emitted by a view
type IntentHandler func(Intent)

// CopySecret requests the passphrase of the account to be copied
func (v *View) CopySecret() {
	v.emit(Intent{Kind: IntentCopySecret, Value: v.Account.ID})
}

// CopyIdentifier requests the account identifier to be copied
func (v *View) CopyIdentifier() {
	v.emit(Intent{Kind: IntentCopyIdentifier, Value: v.Account.Identifier})
}

// Navigate requests the account details to be opened
func (v *View) Navigate() {
	v.emit(Intent{Kind: IntentNavigate, Value: v.Account.ID})
}

func (v *View) emit(intent Intent) {
	if v.handler != nil {
		v.handler(intent)
	}
}
