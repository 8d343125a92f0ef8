package constants

// Event subjects
const (
	// Trip lifecycle
	SubjectTripRequested     = "trip.requested"
	SubjectTripAccepted      = "trip.accepted"
	SubjectTripStatusChanged = "trip.status_changed"
	SubjectTripCancelled     = "trip.cancelled"
	SubjectTripCompleted     = "trip.completed"

	// Settlement
	SubjectPaymentCompleted = "payment.completed"

	// Wallet
	SubjectWalletTopup      = "wallet.topup"
	SubjectWalletWithdrawal = "wallet.withdrawal"
	SubjectWalletTransfer   = "wallet.transfer"
)

// JetStream streams and consumers
const (
	StreamRides  = "RIDES"
	StreamWallet = "WALLET"

	ConsumerSettlement = "rides_settlement"
)

// StreamSubjects maps each stream to the subjects it captures
var StreamSubjects = map[string][]string{
	StreamRides:  {"trip.>", "payment.>"},
	StreamWallet: {"wallet.>"},
}
