package analytics

import (
	"context"
	"time"
)

// Event names are the wire contract with the provider's dashboards. They must
// not change; renaming one silently breaks every chart built on it.
const (
	EventUserDownloaded          = "user_downloaded"
	EventUserCompletedOnboarding = "user_completed_onboarding"

	// Payment funnel
	EventUserStartedPayment          = "user_started_payment"
	EventUserSubscribed              = "user_subscribed"
	EventUserCanceledPayment         = "user_canceled_payment"
	EventUserRestoredPurchase        = "user_restored_purchase"
	EventUserEncounteredPaymentError = "user_encountered_payment_error"

	// Checkup survey
	EventUserFeltBetter  = "user_felt_better"
	EventUserFeltWorse   = "user_felt_worse"
	EventUserFeltTheSame = "user_felt_the_same"

	EventUserSawApology              = "user_saw_apology"
	EventUserGaveFeedback            = "user_gave_feedback"
	EventUserTurnedOnNotifications   = "user_turned_on_notifications"
	EventUserTurnedOffNotifications  = "user_turned_off_notifications"
	EventLog                         = "log"
	eventUserFilledOutPrefix         = "user_filled_out_"
	eventUserCheckedDistortionPrefix = "user_checked_distortion_"
)

// FormField names a field of the thought diary form. The set is closed; the
// event name is built by concatenation, so a new field means a new dashboard
// series.
type FormField string

const (
	FormFieldAutomatic   FormField = "automatic"
	FormFieldDistortions FormField = "distortions"
	FormFieldChallenge   FormField = "challenge"
	FormFieldAlternative FormField = "alternative"
)

// expirationDateFormat renders subscription expiry as a calendar date so
// dashboards bucket by day rather than by instant.
const expirationDateFormat = "2006-01-02"

// UserDownloaded records a first launch. Never suppressed: install counts
// must include developer devices or the download funnel undercounts.
func (c *Client) UserDownloaded(ctx context.Context) {
	c.trackAlways(ctx, EventUserDownloaded)
}

// UserCompletedOnboarding records the end of the intro flow. Suppressed in
// development.
func (c *Client) UserCompletedOnboarding(ctx context.Context) {
	c.track(ctx, EventUserCompletedOnboarding)
}

// UserStartedPayment records entry into the payment flow. Never suppressed.
func (c *Client) UserStartedPayment(ctx context.Context) {
	c.trackAlways(ctx, EventUserStartedPayment)
}

// UserSubscribed records a completed subscription purchase. Never suppressed.
// The expiration Unix timestamp is formatted as a UTC calendar date under the
// expirationDate property.
func (c *Client) UserSubscribed(ctx context.Context, expirationUnix int64) {
	c.trackWithPropertiesAlways(ctx, EventUserSubscribed, Properties{
		"expirationDate": time.Unix(expirationUnix, 0).UTC().Format(expirationDateFormat),
	})
}

// UserCanceledPayment records an abandoned payment flow. Suppressed in
// development.
func (c *Client) UserCanceledPayment(ctx context.Context) {
	c.track(ctx, EventUserCanceledPayment)
}

// UserRestoredPurchase records a successful purchase restore. Suppressed in
// development.
func (c *Client) UserRestoredPurchase(ctx context.Context) {
	c.track(ctx, EventUserRestoredPurchase)
}

// UserEncounteredPaymentError records a payment failure with the provider's
// error string. Suppressed in development.
func (c *Client) UserEncounteredPaymentError(ctx context.Context, errMsg string) {
	c.trackWithProperties(ctx, EventUserEncounteredPaymentError, Properties{"error": errMsg})
}

// UserFeltBetter records a positive checkup answer. Suppressed in development.
func (c *Client) UserFeltBetter(ctx context.Context) {
	c.track(ctx, EventUserFeltBetter)
}

// UserFeltWorse records a negative checkup answer. Suppressed in development.
func (c *Client) UserFeltWorse(ctx context.Context) {
	c.track(ctx, EventUserFeltWorse)
}

// UserFeltTheSame records a neutral checkup answer. Suppressed in development.
func (c *Client) UserFeltTheSame(ctx context.Context) {
	c.track(ctx, EventUserFeltTheSame)
}

// UserSawApology records that the post-incident apology screen was shown.
// Suppressed in development.
func (c *Client) UserSawApology(ctx context.Context) {
	c.track(ctx, EventUserSawApology)
}

// UserGaveFeedback records in-app feedback text. Suppressed in development.
func (c *Client) UserGaveFeedback(ctx context.Context, feedback string) {
	c.trackWithProperties(ctx, EventUserGaveFeedback, Properties{"feedback": feedback})
}

// UserTurnedOnNotifications records opting into reminders. Suppressed in
// development.
func (c *Client) UserTurnedOnNotifications(ctx context.Context) {
	c.track(ctx, EventUserTurnedOnNotifications)
}

// UserTurnedOffNotifications records opting out of reminders. Suppressed in
// development.
func (c *Client) UserTurnedOffNotifications(ctx context.Context) {
	c.track(ctx, EventUserTurnedOffNotifications)
}

// UserFilledOutFormField records completion of one diary form field, e.g.
// "user_filled_out_distortions". Suppressed in development.
func (c *Client) UserFilledOutFormField(ctx context.Context, field FormField) {
	c.track(ctx, eventUserFilledOutPrefix+string(field))
}

// UserCheckedDistortion records selection of a cognitive distortion by slug,
// e.g. "user_checked_distortion_all-or-nothing". Suppressed in development.
func (c *Client) UserCheckedDistortion(ctx context.Context, slug string) {
	c.track(ctx, eventUserCheckedDistortionPrefix+slug)
}
