package module

import dom "folkarchive/internal/services/content/domain"

// Ports holds the ports exposed by the content module
type Ports struct {
	Source dom.SourcePort
}
