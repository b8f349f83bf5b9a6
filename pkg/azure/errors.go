package azure

import "strings"

// friendlyDiagnostic rewrites a known quota failure from az into a message
// that tells the user what to do about it. Everything else passes through.
func friendlyDiagnostic(diag string) string {
	if strings.Contains(diag, "OperationNotAllowed") &&
		strings.Contains(diag, "quota") {
		return "Azure quota exceeded: the operation would exceed an approved quota " +
			"for your subscription. Request an increase at " +
			"https://aka.ms/ProdportalCRP/#blade/Microsoft_Azure_Capacity/UsageAndQuota.ReactView\n" +
			"Original diagnostic: " + diag
	}
	return diag
}
