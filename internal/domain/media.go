package domain

import "regexp"

// Media-link patterns recognized inside task names. The video ID is
// the canonical 11-character YouTube identifier.
var mediaPatterns = []*regexp.Regexp{
	regexp.MustCompile(`https?://(?:www\.|m\.)?youtube\.com/watch\?(?:[^\s&]*&)*v=([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`https?://(?:www\.)?youtu\.be/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`https?://(?:www\.)?youtube\.com/embed/([A-Za-z0-9_-]{11})`),
}

// InferMedia derives media metadata from a task name. It returns nil
// when the name contains no supported media link. The function is
// pure and idempotent: a task whose media was already inferred yields
// the same reference again.
func InferMedia(name string) *MediaRef {
	for _, re := range mediaPatterns {
		m := re.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		return &MediaRef{
			ID:        m[1],
			SourceURL: m[0],
		}
	}
	return nil
}
