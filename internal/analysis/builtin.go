package analysis

// Built-in detection vocabulary. Three category groups: compliance/legal,
// behavioral/HR, and sales/fraud. Compiled once at process start; the
// catalog is read-only shared state.

var complianceLegalRules = []Rule{
	mustRule("compliance/legal", SeverityCritical, `\bNDA\s+violation\b`, "Potential NDA violation mentioned"),
	mustRule("compliance/legal", SeverityCritical, `\bbreach\s+of\s+contract\b`, "Breach of contract reference"),
	mustRule("compliance/legal", SeverityCritical, `\binsider\s+trading\b`, "Insider trading reference"),
	mustRule("compliance/legal", SeverityCritical, `\bmoney\s+laundering\b`, "Money laundering reference"),
	mustRule("compliance/legal", SeverityHigh, `\bconfidential\s+information\b`, "Confidential information being discussed"),
	mustRule("compliance/legal", SeverityHigh, `\btrade\s+secret\b`, "Trade secret reference"),
	mustRule("compliance/legal", SeverityHigh, `\bregulatory\s+violation\b`, "Regulatory violation mentioned"),
	mustRule("compliance/legal", SeverityHigh, `\bnon-?compliance\b`, "Non-compliance mentioned"),
	mustRule("compliance/legal", SeverityHigh, `\blawsuit\b`, "Lawsuit reference"),
	mustRule("compliance/legal", SeverityHigh, `\blitigation\b`, "Litigation reference"),
	mustRule("compliance/legal", SeverityHigh, `\bliability\b`, "Legal liability mentioned"),
	mustRule("compliance/legal", SeverityMedium, `\boff\s+the\s+record\b`, "Off the record statement"),
	mustRule("compliance/legal", SeverityMedium, `\bdon'?t\s+tell\s+anyone\b`, "Secrecy request"),
	mustRule("compliance/legal", SeverityMedium, `\bkeep\s+(this|it)\s+quiet\b`, "Request to keep information quiet"),
	mustRule("compliance/legal", SeverityMedium, `\bbetween\s+us\b`, "Request for secrecy"),
	mustRule("compliance/legal", SeverityMedium, `\bunder\s+the\s+table\b`, "Under the table dealing"),
	mustRule("compliance/legal", SeverityMedium, `\bconflict\s+of\s+interest\b`, "Conflict of interest mentioned"),
	mustRule("compliance/legal", SeverityLow, `\bproprietary\b`, "Proprietary information reference"),
	mustRule("compliance/legal", SeverityLow, `\bconfidential\b`, "Confidentiality reference"),
	mustRule("compliance/legal", SeverityLow, `\bpending\s+(investigation|audit)\b`, "Pending investigation or audit"),
}

var behavioralHRRules = []Rule{
	mustRule("behavioral/HR", SeverityCritical, `\b(sexual\s+)?harassment\b`, "Harassment mentioned"),
	mustRule("behavioral/HR", SeverityCritical, `\bdiscrimination\b`, "Discrimination mentioned"),
	mustRule("behavioral/HR", SeverityCritical, `\bretaliation\b`, "Retaliation mentioned"),
	mustRule("behavioral/HR", SeverityCritical, `\bhostile\s+work\s+environment\b`, "Hostile work environment"),
	mustRule("behavioral/HR", SeverityHigh, `\bthreatened?\b`, "Threat mentioned"),
	mustRule("behavioral/HR", SeverityHigh, `\bbullying\b`, "Bullying mentioned"),
	mustRule("behavioral/HR", SeverityHigh, `\bintimidation\b`, "Intimidation mentioned"),
	mustRule("behavioral/HR", SeverityHigh, `\binappropriate\s+(behavior|conduct|comment|touching)\b`, "Inappropriate behavior"),
	mustRule("behavioral/HR", SeverityHigh, `\bunwelcome\s+(advance|contact|comment)\b`, "Unwelcome conduct"),
	mustRule("behavioral/HR", SeverityMedium, `\bfavoritism\b`, "Favoritism mentioned"),
	mustRule("behavioral/HR", SeverityMedium, `\bunfair\s+treatment\b`, "Unfair treatment mentioned"),
	mustRule("behavioral/HR", SeverityMedium, `\bhostile\b`, "Hostile behavior"),
	mustRule("behavioral/HR", SeverityMedium, `\babusive\b`, "Abusive behavior mentioned"),
	mustRule("behavioral/HR", SeverityMedium, `\byelling\b|\bscreaming\b`, "Aggressive vocal behavior"),
	mustRule("behavioral/HR", SeverityMedium, `\bexclud(ed|ing)\b.*\b(meeting|team|project)\b`, "Exclusion from work activities"),
	mustRule("behavioral/HR", SeverityLow, `\buncomfortable\b`, "Discomfort expressed"),
	mustRule("behavioral/HR", SeverityLow, `\bunsafe\b`, "Safety concern"),
	mustRule("behavioral/HR", SeverityLow, `\btoxic\b`, "Toxic environment reference"),
}

var salesFraudRules = []Rule{
	mustRule("sales/fraud", SeverityCritical, `\bguaranteed\s+returns?\b`, "Guaranteed returns claim"),
	mustRule("sales/fraud", SeverityCritical, `\bno\s+risk\b`, "No-risk claim"),
	mustRule("sales/fraud", SeverityCritical, `\bPonzi\b|\bpyramid\s+scheme\b`, "Ponzi/pyramid scheme reference"),
	mustRule("sales/fraud", SeverityCritical, `\bembezzle?ment\b`, "Embezzlement reference"),
	mustRule("sales/fraud", SeverityCritical, `\bforgery\b|\bforged\b`, "Forgery reference"),
	mustRule("sales/fraud", SeverityHigh, `\boff\s+the\s+books?\b`, "Off the books transaction"),
	mustRule("sales/fraud", SeverityHigh, `\bwire\s+transfer\b.*\b(immediate|urgent|now)\b`, "Urgent wire transfer request"),
	mustRule("sales/fraud", SeverityHigh, `\bfake\s+(invoice|receipt|document)\b`, "Fake document reference"),
	mustRule("sales/fraud", SeverityHigh, `\bcook(ing)?\s+the\s+books?\b`, "Cooking the books reference"),
	mustRule("sales/fraud", SeverityHigh, `\bfalsi(fy|fied|fication)\b`, "Falsification reference"),
	mustRule("sales/fraud", SeverityHigh, `\bmisrepresent(ation|ed|ing)?\b`, "Misrepresentation"),
	mustRule("sales/fraud", SeverityMedium, `\bact\s+now\b|\blimited\s+time\b|\burgent\s+opportunity\b`, "High-pressure sales tactic"),
	mustRule("sales/fraud", SeverityMedium, `\btoo\s+good\s+to\s+be\s+true\b`, "Suspicious claim"),
	mustRule("sales/fraud", SeverityMedium, `\bdon'?t\s+need\s+to\s+(know|see|read)\b`, "Discouraging due diligence"),
	mustRule("sales/fraud", SeverityMedium, `\bskip\s+(the\s+)?paperwork\b`, "Avoiding documentation"),
	mustRule("sales/fraud", SeverityMedium, `\binflat(ed|ing)\s+(numbers?|figures?|results?)\b`, "Inflated figures"),
	mustRule("sales/fraud", SeverityLow, `\bside\s+deal\b`, "Side deal mentioned"),
	mustRule("sales/fraud", SeverityLow, `\bkickback\b`, "Kickback reference"),
	mustRule("sales/fraud", SeverityLow, `\bunder-?report(ed|ing)?\b`, "Under-reporting"),
}

// BuiltinRules returns the full built-in catalog in scan order:
// compliance/legal, then behavioral/HR, then sales/fraud. The returned
// slice is a copy; the underlying catalog is never mutated.
func BuiltinRules() []Rule {
	all := make([]Rule, 0, len(complianceLegalRules)+len(behavioralHRRules)+len(salesFraudRules))
	all = append(all, complianceLegalRules...)
	all = append(all, behavioralHRRules...)
	all = append(all, salesFraudRules...)
	return all
}
