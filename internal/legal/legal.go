// Package legal holds the static legal documents served to the app.
// Content is compiled in; these are display documents, not data.
package legal

type Document struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

var documents = map[string]Document{
	"terms": {
		Key:   "terms",
		Title: "Terms & Conditions",
		Content: `# ReviewHub Terms and Conditions
**Effective Date: December 30, 2025**

Welcome to ReviewHub, a community-driven review and reporting platform. These Terms govern your access to and use of the Service. By creating an account or using the Service, you agree to be bound by these Terms, our Privacy Policy and Community Guidelines.

## 1. Eligibility
You must be at least 18 years old or the age of majority in your jurisdiction to use the Service.

## 2. Account Registration and Security
- To post reviews, replies, votes, or counter-reviews, you must create an account and undergo verification. Anonymous viewing and searching are permitted without an account.
- You are responsible for maintaining the confidentiality of your account credentials and for all activities under your account.

## 3. User-Generated Content
- You may submit reviews, replies, counter-reviews and votes related to categories such as ride shares, online sellers, phone scams and businesses.
- You represent that your content is accurate, not misleading, and does not infringe third-party rights. You are solely responsible for your content.
- Counter-reviews require ownership verification (e.g., OTP for phones). False claims may result in account termination.

## 4. Prohibited Conduct
You agree not to post illegal, harmful, abusive, defamatory or harassing content; infringe intellectual property or privacy rights; spam or solicit; scrape or disrupt the Service; impersonate others; or interfere with moderation or voting systems.

## 5. Voting and Moderation
The Service uses community voting for moderation. Votes may lead to content hiding based on thresholds. We may override votes for legal or policy reasons.`,
	},
	"privacy": {
		Key:   "privacy",
		Title: "Privacy Policy",
		Content: `# ReviewHub Privacy Policy
**Effective Date: December 30, 2025**

We respect your privacy and are committed to protecting your personal data in compliance with Sri Lanka's Personal Data Protection Act No. 9 of 2022 (PDPA).

## 1. Information We Collect
- **Personal Data**: email for registration, phone numbers for ownership verification, profile details.
- **User Content Data**: reviews, tags, attachments.
- **Usage Data**: device information and interaction logs used to operate and secure the Service.

## 2. How We Use It
Verification codes are sent to the phone number you supply solely to confirm ownership; verified numbers are stored against your profile. We never sell personal data.

## 3. Your Rights
You may request access to, rectification of, or erasure of your personal data at any time.`,
	},
	"community": {
		Key:   "community",
		Title: "Community Guidelines",
		Content: `# ReviewHub Community Guidelines
**Effective Date: December 30, 2025**

These Guidelines ensure a safe, respectful environment for all users. Violations may lead to content removal, account suspension, or bans.

## 1. General Rules
- Be honest and factual in reviews.
- Respect others: no hate speech or discrimination.
- No personal attacks, harassment, threats, or doxxing.
- Report scams responsibly; false reports harm real people.

## 2. Scam Reports
Reports of phone scams, fraudulent sellers and fake listings must describe your own experience. Do not repost second-hand claims as fact.`,
	},
	"disclaimer": {
		Key:   "disclaimer",
		Title: "Disclaimer",
		Content: `# ReviewHub Disclaimer
**Effective Date: December 30, 2025**

The information on ReviewHub, including user content, is for general purposes only. We make no representations about accuracy, completeness, or suitability. Use at your own risk.`,
	},
}

// Get looks up a legal document by its key.
func Get(key string) (Document, bool) {
	d, ok := documents[key]
	return d, ok
}

// Keys lists the available document keys.
func Keys() []string {
	out := make([]string, 0, len(documents))
	for k := range documents {
		out = append(out, k)
	}
	return out
}
