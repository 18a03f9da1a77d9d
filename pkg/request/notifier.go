package request

import (
	"fmt"
	"strings"

	"Campus-Inventory-System/domain"
	"Campus-Inventory-System/internal/utils/mailing"
)

// Notifier delivers the requestor email after item outcomes are marked.
// Delivery is best-effort; callers treat a returned error as a report, not a
// reason to roll anything back.
type Notifier interface {
	NotifyOutcome(n domain.OutcomeNotification) error
}

type mailNotifier struct{}

func NewMailNotifier() Notifier {
	return &mailNotifier{}
}

func (m *mailNotifier) NotifyOutcome(n domain.OutcomeNotification) error {
	if n.Recipient == "" {
		return fmt.Errorf("no requestor email on request %s", n.UniqueID)
	}

	subject := fmt.Sprintf("Purchase Request %s: %s", n.UniqueID, n.Action)

	var body strings.Builder
	body.WriteString("<h2>Purchase Request Update</h2>")
	fmt.Fprintf(&body, "<p><strong>Request Number:</strong> %s</p>", n.UniqueID)
	fmt.Fprintf(&body, "<p><strong>Action:</strong> %s</p>", n.Action)
	fmt.Fprintf(&body, "<p><strong>Purpose:</strong> %s</p>", n.Purpose)
	fmt.Fprintf(&body, "<p><strong>Category:</strong> %s / %s</p>", n.Category, n.SubCategory)
	fmt.Fprintf(&body, "<p><strong>Request Date:</strong> %s</p>", n.RequestDate.Format("January 2, 2006"))
	if n.PurchaseDate != "" {
		fmt.Fprintf(&body, "<p><strong>Date of Purchase:</strong> %s</p>", n.PurchaseDate)
	}
	body.WriteString("<p><strong>Items:</strong></p><ul>")
	for _, item := range n.Items {
		fmt.Fprintf(&body, "<li>%s (%s)</li>", item.Label, item.Outcome)
	}
	body.WriteString("</ul>")

	return mailing.SendMail(n.Recipient, subject, body.String())
}
