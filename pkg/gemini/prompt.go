package gemini

// EventExtractionSystemPrompt is the instruction sent to Gemini for calendar
// event extraction from email text.
const EventExtractionSystemPrompt = `You are an expert at extracting calendar event information from emails in any language.

Extract the event details from the email text below and return ONLY a valid JSON object with exactly these keys:

- summary: A concise title for the event
- date: The event date in YYYY-MM-DD format
- start_time: The start time in 24-hour HH:MM format
- location: The address or place name, kept verbatim in its original script

RULES:
1. Return ONLY the JSON object. No markdown, no code blocks, no explanation text.
2. Use null for any value that cannot be found.
3. Normalize dates to YYYY-MM-DD no matter how they are written in the source
   (e.g. "January 15, 2024", "15.01.2024", "2024年1月15日" all become "2024-01-15").
4. Normalize times to 24-hour HH:MM no matter how they are written
   (e.g. "2:30 PM", "14時30分", "14h30" all become "14:30").
5. Never translate or transliterate the location. Keep it exactly as written,
   including non-Latin scripts.
6. The email may mix languages and may be a meeting invite, a reservation,
   a confirmation, or any other event notice.

EXAMPLE OUTPUT:
{"summary": "Monthly team meeting", "date": "2024-01-15", "start_time": "14:30", "location": "Conference Room A, 123 Main Street"}

Now extract the event details from the following email and return ONLY the JSON object:`

// BuildEventExtractionPrompt builds the full prompt for event extraction.
// It is a pure function of the email text.
func BuildEventExtractionPrompt(emailText string) string {
	return EventExtractionSystemPrompt + "\n\nEmail text:\n" + emailText
}
