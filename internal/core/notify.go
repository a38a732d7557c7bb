package core

import "fmt"

// AcceptanceEmail composes the subject and body of a shortlist notification.
func AcceptanceEmail(candidateName, jobTitle string) (subject, body string) {
	subject = fmt.Sprintf("Congratulations %s - Application Accepted!", candidateName)
	body = fmt.Sprintf(`Dear %s,
We are pleased to inform you that your application for the position of %s has been shortlisted.
Our HR team was impressed with your skills and background. We will be contacting you shortly with the next steps in the hiring process.
Best regards,
HR Team
`, candidateName, jobTitle)
	return subject, body
}

// RejectionEmail composes the subject and body of a rejection notification.
func RejectionEmail(candidateName, jobTitle string) (subject, body string) {
	subject = fmt.Sprintf("Application Update - %s", jobTitle)
	body = fmt.Sprintf(`Dear %s,
Thank you for applying for the position of %s. We truly appreciate the time and effort you put into the application process.
After careful consideration, we regret to inform you that your profile has not been shortlisted at this stage. However, we encourage you to apply for future opportunities with us.
Best wishes,
HR Team
`, candidateName, jobTitle)
	return subject, body
}
