package catalog

// #region default-actions

// defaultActionIntents are handled by direct state mutation or a canned
// operational reply.
var defaultActionIntents = []string{
	"lost_or_stolen_card", "lost_or_stolen_phone", "change_pin",
	"order_physical_card", "get_physical_card", "get_virtual_card",
	"get_disposable_virtual_card", "activate_my_card", "terminate_account",
	"edit_personal_details", "verify_top_up",
	"transfer_into_account",
	"top_up_failed", "card_not_working", "cancel_transfer", "pending_transfer",
}

// #endregion default-actions

// #region default-knowledge

// defaultKnowledgeIntents are answered from the policy passage index.
// Names are the classifier's labels verbatim, casing included.
var defaultKnowledgeIntents = []string{
	"age_limit", "apple_pay_or_google_pay", "atm_support", "automatic_top_up",
	"balance_not_updated_after_bank_transfer", "balance_not_updated_after_cheque_or_cash_deposit",
	"beneficiary_not_allowed", "card_about_to_expire", "card_acceptance",
	"card_arrival", "card_delivery_estimate", "card_linking", "card_payment_fee_charged",
	"card_payment_not_recognised", "card_payment_wrong_exchange_rate", "card_swallowed", "cash_withdrawal_charge",
	"cash_withdrawal_not_recognised", "compromised_card", "contactless_not_working", "country_support",
	"declined_card_payment", "declined_cash_withdrawal", "declined_transfer", "direct_debit_payment_not_recognised",
	"disposable_card_limits", "exchange_charge", "exchange_rate", "exchange_via_app",
	"extra_charge_on_statement", "failed_transfer", "fiat_currency_support",
	"getting_spare_card", "getting_virtual_card",
	"passcode_forgotten", "pending_card_payment", "pending_cash_withdrawal",
	"pending_top_up", "pin_blocked", "receiving_money", "Refund_not_showing_up",
	"request_refund", "reverted_card_payment", "supported_cards_and_currencies",
	"top_up_by_bank_transfer_charge", "top_up_by_card_charge", "top_up_by_cash_or_cheque",
	"top_up_limits", "top_up_reverted", "topping_up_by_card", "transaction_charged_twice", "transfer_fee_charged",
	"transfer_not_received_by_recipient", "transfer_timing", "unable_to_verify_identity",
	"verify_my_identity", "verify_source_of_funds", "virtual_card_not_working",
	"visa_or_mastercard", "why_verify_identity", "wrong_amount_of_cash_received",
	"wrong_exchange_rate_for_cash_withdrawal",
}

// #endregion default-knowledge
