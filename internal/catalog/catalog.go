// Package catalog holds the static reference data of each case schema:
// predefined case templates, advocacy action templates, the team roster and
// the canned chat material.
package catalog

import (
	"github.com/Lalithkumar18-lk/Ai/internal/registry"
)

type CaseTemplate struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Priority      string `json:"priority"`
	Platform      string `json:"platform"`
	AffectedGroup string `json:"affected_group"`
}

// ActionGroup lists the canned advocacy actions of one type.
type ActionGroup struct {
	Type    string   `json:"type"`
	Actions []string `json:"actions"`
}

// KeywordReply answers any chat message containing Keyword.
type KeywordReply struct {
	Keyword string `json:"keyword"`
	Reply   string `json:"reply"`
}

type Catalog struct {
	Schema         string         `json:"schema"`
	Cases          []CaseTemplate `json:"cases"`
	Categories     []string       `json:"categories"`
	Actions        []ActionGroup  `json:"actions"`
	Team           []string       `json:"team"`
	QuickPrompts   []string       `json:"quick_prompts"`
	Replies        []string       `json:"replies"`
	KeywordReplies []KeywordReply `json:"keyword_replies"`
}

// ForSchema returns the catalog of a schema; unknown names get the AI
// ethics catalog.
func ForSchema(schema string) Catalog {
	if schema == registry.HumanRights.Name {
		return humanRights
	}
	return aiEthics
}

func (c Catalog) ActionTypes() []string {
	out := make([]string, 0, len(c.Actions))
	for _, g := range c.Actions {
		out = append(out, g.Type)
	}
	return out
}

// ActionsFor returns the canned actions of a type, or nil.
func (c Catalog) ActionsFor(actionType string) []string {
	for _, g := range c.Actions {
		if g.Type == actionType {
			return g.Actions
		}
	}
	return nil
}

var advocacyActions = []ActionGroup{
	{Type: "Legal", Actions: []string{
		"File regulatory complaint with relevant authority",
		"Initiate class action lawsuit preparations",
		"Request algorithmic transparency under GDPR/CCPA",
		"Submit Freedom of Information Act request",
	}},
	{Type: "Media", Actions: []string{
		"Prepare press release for media outlets",
		"Contact investigative journalists",
		"Draft op-ed for major newspapers",
		"Create social media awareness campaign",
	}},
	{Type: "Technical", Actions: []string{
		"Request independent algorithmic audit",
		"Demand source code review",
		"Propose third-party validation",
		"Request bias mitigation implementation",
	}},
	{Type: "Community", Actions: []string{
		"Organize community forum with affected individuals",
		"Create online petition",
		"Coordinate with advocacy groups",
		"Host public awareness webinar",
	}},
	{Type: "Corporate", Actions: []string{
		"Schedule meeting with company executives",
		"Propose ethical AI review board",
		"Demand public transparency report",
		"Request immediate system suspension",
	}},
}

var quickPrompts = []string{
	"What's the first step?",
	"Who should we contact?",
	"Documentation needed?",
	"Legal implications?",
	"Media strategy?",
}

var replies = []string{
	"Based on similar cases, I recommend documenting all evidence systematically.",
	"Consider contacting the platform's ethics committee directly.",
	"Have you reviewed the platform's algorithmic accountability report?",
	"This might require escalating to regulatory authorities.",
	"I suggest conducting an independent impact assessment first.",
	"Let's identify all stakeholders affected by this issue.",
}

var keywordReplies = []KeywordReply{
	{Keyword: "first step", Reply: "Start by documenting the harm: who is affected, when it happened and which system decision caused it."},
	{Keyword: "contact", Reply: "Reach the platform's ethics or trust team first, then the relevant regulator if there is no response."},
	{Keyword: "document", Reply: "Collect screenshots, decision notices, dates and first-hand accounts from affected people."},
	{Keyword: "legal", Reply: "Check data-protection and anti-discrimination law; a regulatory complaint is usually the fastest lever."},
	{Keyword: "media", Reply: "Prepare a short factual brief and a spokesperson before contacting journalists."},
}

var aiEthics = Catalog{
	Schema: registry.AIEthics.Name,
	Cases: []CaseTemplate{
		{
			Title:         "Algorithmic Bias in Hiring Platform",
			Description:   "AI recruiting tool showing significant gender bias, favoring male candidates over equally qualified female candidates in tech roles.",
			Category:      "Bias & Discrimination",
			Priority:      "urgent",
			Platform:      "TechHire AI",
			AffectedGroup: "Women in tech",
		},
		{
			Title:         "Healthcare AI Misdiagnosis",
			Description:   "Medical diagnostic AI incorrectly diagnosing rare diseases, leading to delayed treatment for 200+ patients.",
			Category:      "Healthcare Safety",
			Priority:      "urgent",
			Platform:      "MedScan AI",
			AffectedGroup: "Patients with rare diseases",
		},
		{
			Title:         "Facial Recognition False Positives",
			Description:   "Law enforcement facial recognition system misidentifying individuals, disproportionately affecting minority communities.",
			Category:      "Privacy & Surveillance",
			Priority:      "high",
			Platform:      "SafeCity AI",
			AffectedGroup: "Minority communities",
		},
		{
			Title:         "Social Media Recommendation Harm",
			Description:   "AI recommendation algorithm promoting harmful content to teenagers, linked to mental health issues.",
			Category:      "Content Moderation",
			Priority:      "high",
			Platform:      "SocialFlow",
			AffectedGroup: "Teenagers",
		},
		{
			Title:         "Autonomous Vehicle Ethics Dilemma",
			Description:   "Self-driving car algorithm showing inconsistent decision-making in accident scenarios, raising ethical concerns.",
			Category:      "Autonomous Systems",
			Priority:      "medium",
			Platform:      "AutoDrive Inc",
			AffectedGroup: "General public",
		},
		{
			Title:         "Financial AI Loan Discrimination",
			Description:   "AI loan approval system systematically denying applications from certain zip codes, perpetuating historical redlining.",
			Category:      "Financial Equity",
			Priority:      "urgent",
			Platform:      "FinTech Solutions",
			AffectedGroup: "Low-income neighborhoods",
		},
	},
	Categories: []string{
		"Bias & Discrimination",
		"Healthcare Safety",
		"Privacy & Surveillance",
		"Content Moderation",
		"Autonomous Systems",
		"Financial Equity",
	},
	Actions:        advocacyActions,
	Team:           []string{"Alex Chen", "Maria Garcia", "David Kim", "Sarah Johnson", "James Wilson"},
	QuickPrompts:   quickPrompts,
	Replies:        replies,
	KeywordReplies: keywordReplies,
}

var humanRights = Catalog{
	Schema: registry.HumanRights.Name,
	Cases: []CaseTemplate{
		{
			Title:         "Predictive Policing Targets Protest Organizers",
			Description:   "Risk-scoring system flags people who attended peaceful demonstrations, leading to repeated stops and surveillance.",
			Category:      "Freedom of Assembly",
			Priority:      "critical",
			Platform:      "CivicGuard Analytics",
			AffectedGroup: "Protest organizers",
		},
		{
			Title:         "Automated Welfare Fraud Flags",
			Description:   "Benefits eligibility model suspends payments to single parents on the basis of opaque fraud scores.",
			Category:      "Right to Social Security",
			Priority:      "critical",
			Platform:      "BenefitCheck",
			AffectedGroup: "Single-parent households",
		},
		{
			Title:         "Content Filter Silencing Minority Languages",
			Description:   "Moderation model removes posts written in minority languages at several times the rate of majority-language posts.",
			Category:      "Freedom of Expression",
			Priority:      "high",
			Platform:      "OpenVoice Moderation",
			AffectedGroup: "Minority-language speakers",
		},
		{
			Title:         "Biometric Border Screening Errors",
			Description:   "Face matching at border crossings misidentifies asylum seekers, delaying claims and separating families.",
			Category:      "Right to Seek Asylum",
			Priority:      "high",
			Platform:      "BorderSense",
			AffectedGroup: "Asylum seekers",
		},
		{
			Title:         "Workplace Emotion Monitoring",
			Description:   "Call-center software scores employee emotions from voice and video, feeding disciplinary decisions.",
			Category:      "Right to Privacy",
			Priority:      "medium",
			Platform:      "MoodMetrics",
			AffectedGroup: "Call-center workers",
		},
		{
			Title:         "Tenant Screening Denials",
			Description:   "Automated tenant screening rejects applicants with old eviction filings that were dismissed.",
			Category:      "Right to Housing",
			Priority:      "low",
			Platform:      "RentScore",
			AffectedGroup: "Low-income renters",
		},
	},
	Categories: []string{
		"Freedom of Assembly",
		"Right to Social Security",
		"Freedom of Expression",
		"Right to Seek Asylum",
		"Right to Privacy",
		"Right to Housing",
		"Non-discrimination",
	},
	Actions:        advocacyActions,
	Team:           []string{"Amina Yusuf", "Lucas Moreau", "Priya Nair", "Tomás Herrera", "Grace Owusu"},
	QuickPrompts:   quickPrompts,
	Replies:        replies,
	KeywordReplies: keywordReplies,
}
