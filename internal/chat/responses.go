package chat

const welcomeText = "Hello! I'm a support counselor here to help you. " +
	"This is a safe and confidential space. How can I assist you today?"

// counselorReplies is the fixed pool the auto-responder draws from,
// uniformly at random, one reply per user message.
var counselorReplies = []string{
	"Thank you for reaching out. You're not alone, and we're here to help. Can you tell me more about what's happening?",
	"I understand this must be very difficult for you. Your safety is our top priority. Have you been able to create a safety plan?",
	"It's brave of you to seek help. Would you like information about local shelters or legal resources in your area?",
	"I hear you, and your feelings are valid. Remember that the abuse is not your fault. What kind of support would be most helpful for you right now?",
	"Thank you for sharing that with me. Would you like to talk about safety planning or would you prefer to discuss other resources available to you?",
	"I'm here to support you. Please remember that you deserve to be treated with respect and kindness. Would you like to explore your options together?",
	"That sounds really challenging. You've taken an important step by reaching out. Can I help you connect with emergency services or other support resources?",
	"I want you to know that help is available 24/7. If you're in immediate danger, please call 911. Otherwise, I'm here to listen and provide information.",
}
