package importercmd

// FeatureGates exposes runtime feature toggles honoured by importer command
// handlers. Host applications can supply closures backed by their own
// configuration so a deployment can pause imports without rewiring handlers.
type FeatureGates struct {
	ImporterEnabled func() bool
}

func (g FeatureGates) importerEnabled() bool {
	if g.ImporterEnabled == nil {
		return true
	}
	return g.ImporterEnabled()
}
