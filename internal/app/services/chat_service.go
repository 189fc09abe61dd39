package services

import "strings"

// ChatService produces canned replies for the site chat widget. The
// matching is a fixed ordered rule table over lowercased input; there is
// no model, no state, and the same message always yields the same reply.
type ChatService interface {
	Reply(message string) string
}

// chatRule maps trigger keywords to a canned reply. Rules are evaluated
// in order; the first keyword hit wins.
type chatRule struct {
	keywords []string
	reply    string
}

var chatRules = []chatRule{
	{
		keywords: []string{"hello", "hi", "hey", "good morning", "good afternoon"},
		reply:    "Hello! I'm VelanDev's assistant. How can I help you today with your software development needs?",
	},
	{
		keywords: []string{"service", "develop", "solution", "offer"},
		reply:    "We specialize in custom software development, AI integration, and enterprise solutions. Would you like to know more about any specific service?",
	},
	{
		keywords: []string{"industr", "project", "experience", "client"},
		reply:    "Our team has successfully delivered 100+ projects across various industries including Healthcare, Finance, Education, and Logistics.",
	},
	{
		keywords: []string{"career", "job", "jobs", "hiring", "apply", "position"},
		reply:    "We're always looking for talented people! Check the careers page for open roles, or send a general application and our team will get back to you.",
	},
	{
		keywords: []string{"contact", "consult", "schedule", "talk", "connect", "quote"},
		reply:    "I can help you schedule a consultation with our experts. Would you like me to connect you with our team?",
	},
	{
		keywords: []string{"tech", "stack", "react", "python", "framework", "cloud"},
		reply:    "VelanDev uses cutting-edge technologies like React, Next.js, Node.js, Python, and various AI/ML frameworks to build scalable solutions.",
	},
}

// defaultChatReply is returned when no rule matches
const defaultChatReply = "We offer end-to-end development services from ideation to deployment and maintenance. What kind of project are you working on?"

// chatServiceImpl implements the ChatService interface
type chatServiceImpl struct{}

// NewChatService creates a new chat service instance
func NewChatService() ChatService {
	return &chatServiceImpl{}
}

// Reply returns the canned reply for the first matching rule
func (s *chatServiceImpl) Reply(message string) string {
	normalized := strings.ToLower(strings.TrimSpace(message))
	if normalized == "" {
		return defaultChatReply
	}

	words := strings.FieldsFunc(normalized, func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'))
	})

	for _, rule := range chatRules {
		for _, keyword := range rule.keywords {
			if matchKeyword(normalized, words, keyword) {
				return rule.reply
			}
		}
	}

	return defaultChatReply
}

// matchKeyword matches phrases as substrings and single keywords as word
// prefixes, so "hi" does not fire inside "which".
func matchKeyword(normalized string, words []string, keyword string) bool {
	if strings.Contains(keyword, " ") {
		return strings.Contains(normalized, keyword)
	}
	for _, word := range words {
		if len(keyword) < 4 {
			if word == keyword {
				return true
			}
		} else if strings.HasPrefix(word, keyword) {
			return true
		}
	}
	return false
}
