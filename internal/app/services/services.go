package services

// Services defined in this package:
// - CareerService: validation and orchestration for jobs and applications
// - ContactService: contact form validation and notification dispatch
// - ChatService: canned replies for the site chat widget
// - ContentService: structured content of the public pages
