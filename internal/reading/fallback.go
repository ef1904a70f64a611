package reading

func (TarotInput) fallback() string {
	return "The cards reveal that you are at a significant crossroads in your spiritual journey. The energy surrounding your question suggests that transformation is not only possible but necessary for your growth. Trust your intuition as you navigate the path ahead, for your inner wisdom holds the key to the answers you seek."
}

func (IChingInput) fallback() string {
	return "The ancient wisdom of the I Ching speaks of natural cycles and perfect timing. Your current situation reflects the eternal dance between yin and yang, action and receptivity. The hexagram suggests that by aligning with natural flow rather than forcing outcomes, you will find the harmony you seek."
}

func (BaziInput) fallback() string {
	return "Your birth chart reveals a unique elemental constitution that shapes your life's journey. The current 10-year luck pillar indicates a period of growth and opportunity, particularly in areas related to your natural talents. Pay attention to seasonal cycles and elemental balance in your daily life."
}

func (AstrologyInput) fallback() string {
	return "The planetary influences in your chart speak to deep soul patterns and karmic lessons. Your current transits suggest a time of awakening and spiritual evolution. The cosmos is supporting your journey toward authentic self-expression and meaningful connections."
}

func (NumerologyInput) fallback() string {
	return "The sacred numbers in your chart reveal a divine blueprint for your life's purpose. Your current personal year cycle indicates themes of growth, creativity, and new beginnings. Trust in the mathematical perfection of the universe as it guides your path."
}

func (PalmInput) fallback() string {
	return "The lines in your palm tell the story of your soul's journey through this lifetime. Your life line speaks of vitality and resilience, while your heart line reveals deep capacity for love and connection. The wisdom held in your hands guides you toward your highest potential."
}

func (FaceInput) fallback() string {
	return "The features of your face reflect the wisdom of your ancestors and the potential of your future. Your facial structure reveals natural talents and life themes that, when understood and honored, can lead to great fulfillment and success."
}

func (CombinedInput) fallback() string {
	return "The convergence of Eastern and Western wisdom traditions in your reading reveals a powerful synthesis of spiritual insight. Multiple systems confirm themes of transformation, timing, and authentic self-expression. Trust in the unified message that emerges from this ancient wisdom."
}
