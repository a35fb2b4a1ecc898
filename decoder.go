package aiwire

// SceneDecoder decodes scene containers with an explicit policy for
// entities that fail to translate. The zero value aborts on the first
// failure, like Scene.UnmarshalBinary; with SkipInvalid set, a failed
// entity is logged and dropped and the rest of the scene survives.
//
// Framing damage (bad magic, truncated chunks) always aborts: past
// that point there is no trustworthy record boundary to resume from.
type SceneDecoder struct {
	Logger      Logger
	SkipInvalid bool
}

// Decode translates one scene container per the decoder's policy.
// When entities were skipped, the returned scene carries
// SceneFlagIncomplete.
func (d *SceneDecoder) Decode(data []byte) (*Scene, error) {
	logger := d.Logger
	if logger == nil {
		logger = NewNopLogger()
	}
	skipped := 0
	s, err := decodeScene(data, func(id string, err error) error {
		if !d.SkipInvalid {
			return err
		}
		logger.Warnf("skipping %s entity: %v", id, err)
		skipped++
		return nil
	})
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		s.Flags |= SceneFlagIncomplete
		logger.Infof("scene decoded with %d entity(ies) skipped", skipped)
	}
	return s, nil
}
