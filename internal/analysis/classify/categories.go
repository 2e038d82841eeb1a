package classify

import "github.com/ekomarov/docsight/internal/core/domain"

// category is one scored document-type definition. Order matters: the first
// category reaching the maximum score wins ties.
type category struct {
	docType      domain.DocumentType
	filePatterns []string
	keywords     []string
}

var categories = []category{
	{
		docType:      domain.TypeInvoice,
		filePatterns: []string{"invoice", "bill", "receipt", "payment"},
		keywords: []string{
			"invoice", "bill", "billing", "payment", "due", "amount", "total",
			"subtotal", "tax", "receipt", "charge", "cost", "price", "qty",
			"quantity", "item", "description", "vendor", "customer",
		},
	},
	{
		docType:      domain.TypeContract,
		filePatterns: []string{"contract", "agreement", "terms", "legal"},
		keywords: []string{
			"contract", "agreement", "terms", "conditions", "party", "parties",
			"whereas", "hereby", "signature", "signed", "effective date",
			"termination", "clause", "provision", "legal", "binding",
		},
	},
	{
		docType:      domain.TypeResume,
		filePatterns: []string{"resume", "cv", "curriculum"},
		keywords: []string{
			"resume", "curriculum vitae", "experience", "education", "skills",
			"employment", "work history", "qualifications", "achievements",
			"references", "objective", "summary", "career",
		},
	},
	{
		docType:      domain.TypeFinancial,
		filePatterns: []string{"financial", "budget", "profit", "balance", "income"},
		keywords: []string{
			"financial", "budget", "profit", "loss", "revenue", "expenses",
			"balance sheet", "income statement", "cash flow", "assets",
			"liabilities", "equity", "quarterly", "annual",
		},
	},
	{
		docType:      domain.TypeTechnical,
		filePatterns: []string{"report", "analysis", "study", "research"},
		keywords: []string{
			"report", "analysis", "findings", "methodology", "results",
			"conclusion", "recommendation", "data", "research", "study",
			"investigation", "technical", "specification",
		},
	},
	{
		docType:      domain.TypeLegal,
		filePatterns: []string{"legal", "court", "law", "attorney"},
		keywords: []string{
			"legal", "court", "lawsuit", "plaintiff", "defendant", "attorney",
			"law", "statute", "regulation", "compliance", "jurisdiction",
			"litigation", "affidavit", "deposition",
		},
	},
	{
		docType:      domain.TypeMedical,
		filePatterns: []string{"medical", "patient", "doctor", "health", "prescription"},
		keywords: []string{
			"medical", "patient", "diagnosis", "treatment", "prescription",
			"doctor", "physician", "hospital", "clinic", "health", "symptoms",
			"medication", "therapy", "examination",
		},
	},
	{
		docType:      domain.TypeAcademic,
		filePatterns: []string{"thesis", "paper", "academic", "research", "journal"},
		keywords: []string{
			"abstract", "introduction", "methodology", "literature review",
			"references", "bibliography", "research", "study", "university",
			"academic", "journal", "publication", "thesis",
		},
	},
	{
		docType:      domain.TypeManual,
		filePatterns: []string{"manual", "guide", "instructions", "handbook", "tutorial"},
		keywords: []string{
			"manual", "guide", "instructions", "how to", "step by step",
			"procedure", "process", "tutorial", "handbook", "documentation",
			"user guide", "installation",
		},
	},
	{
		docType:      domain.TypePresentation,
		filePatterns: []string{"presentation", "slide", "ppt", "slides"},
		keywords: []string{
			"presentation", "slide", "agenda", "overview", "summary",
			"conclusion", "next steps", "questions", "discussion", "meeting",
			"conference",
		},
	},
	{
		docType:      domain.TypeMarketing,
		filePatterns: []string{"brochure", "flyer", "marketing", "promo"},
		keywords: []string{
			"marketing", "brochure", "flyer", "advertisement", "promotion",
			"campaign", "brand", "product", "service", "offer", "discount",
			"sale",
		},
	},
	{
		docType:      domain.TypePolicy,
		filePatterns: []string{"policy", "procedure", "guidelines", "standards"},
		keywords: []string{
			"policy", "procedure", "guidelines", "standards", "compliance",
			"governance", "framework", "protocol", "rules", "regulations",
			"requirements",
		},
	},
}
