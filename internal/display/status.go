package display

// Variant warna indikator yang dipahami dashboard.
const (
	VariantSuccess = "success"
	VariantDanger  = "danger"
	VariantWarning = "warning"
	VariantDefault = "default"
	VariantPrimary = "primary"
)

type Badge struct {
	Variant string `json:"variant"`
	Title   string `json:"title"`
}

func PaymentStatusBadge(status string) Badge {
	switch status {
	case "captured":
		return Badge{VariantSuccess, "Paid"}
	case "awaiting":
		return Badge{VariantDefault, "Awaiting"}
	case "requires_action":
		return Badge{VariantDanger, "Requires action"}
	case "canceled":
		return Badge{VariantWarning, "Canceled"}
	default:
		return Badge{VariantPrimary, "N/A"}
	}
}

var fulfillmentLabels = map[string]string{
	"fulfilled":           "Fulfilled",
	"shipped":             "Shipped",
	"not_fulfilled":       "Not fulfilled",
	"partially_fulfilled": "Partially fulfilled",
	"partially_shipped":   "Partially shipped",
	"requires":            "Requires action",
}

func FulfillmentStatusLabel(status string) string {
	if l, ok := fulfillmentLabels[status]; ok {
		return l
	}
	return "N/A"
}

func ProductStatusVariant(status string) string {
	if status == "published" {
		return VariantSuccess
	}
	return VariantDefault
}

// UserStatusBadge: Variant di sini nama warna badge (red/grey/green).
func UserStatusBadge(status string) Badge {
	switch status {
	case "rejected":
		return Badge{"red", "Rejected"}
	case "pending":
		return Badge{"grey", "Pending"}
	default:
		return Badge{"green", "Active"}
	}
}
