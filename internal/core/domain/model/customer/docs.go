// Package customer provides the Customer aggregate for the CRM bounded
// context: identity, display name, and the recorded total of the customer's
// most recent order.
package customer
