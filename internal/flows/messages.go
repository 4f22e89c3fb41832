package flows

import "fmt"

// Toast texts shown by the flows.
const (
	MsgProfileSaved      = "Profile saved successfully!"
	MsgGeneratingSearch  = "Profile saved! Generating customized job search..."
	MsgProfileLoaded     = "Welcome back! Profile loaded."
	MsgSearchNeedsQuery  = "Please enter a job title or log in for AI suggestions"
	MsgApplyNeedsProfile = "Please save your profile first before applying!"
	MsgGeneratingEmail   = "AI Agent is generating your email..."
	MsgManualRequired    = "Manual Application Required. Check 'Applications' tab."
	MsgProfileMismatch   = "Error: Profile mismatch. Please Save Profile again."

	unknownError = "Unknown error"
)

func profileErrorMsg(detail string) string {
	if detail == "" {
		detail = unknownError
	}
	return "Error saving profile: " + detail
}

func networkErrorMsg(err error) string {
	return fmt.Sprintf("Network error: %v", err)
}

func searchErrorMsg(err error) string {
	return fmt.Sprintf("Error searching jobs: %v", err)
}

func applicationSentMsg(status string) string {
	return "Application Sent! Status: " + status
}

func applicationFailedMsg(detail string) string {
	if detail == "" {
		detail = unknownError
	}
	return "Application failed: " + detail
}

func welcomeBackMsg(name string) string {
	return "Welcome back, " + name
}
