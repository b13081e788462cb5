// FILE: lixenwraith/confparse/merge.go
package confparse

import "github.com/sirupsen/logrus"

// MergeInto fills gaps in cfg from the template. Explicit config data always wins:
//   - a missing header is added with all its default keys
//   - a missing key is added with its default values
//   - a key present without values receives the default values
//   - a key that already has values is left untouched
//
// Inserted headers and keys are copies. Merging the same template twice is a no-op
// the second time.
func (d *Defaults) MergeInto(cfg *Config) {
	d.merge(cfg, discardLogger())
}

func (d *Defaults) merge(cfg *Config, log logrus.FieldLogger) {
	for _, dh := range d.tree.Headers() {
		h, exists := cfg.Header(dh.Name())
		if !exists {
			cfg.setHeader(dh.clone())
			log.WithField("header", dh.Name()).Debug("Added default header")
			continue
		}

		for _, dk := range dh.Keys() {
			k, exists := h.Key(dk.Name())
			switch {
			case !exists:
				h.AddKey(dk.clone())
				log.WithFields(logrus.Fields{"header": dh.Name(), "key": dk.Name()}).Debug("Added default key")
			case !k.HasValues():
				for _, v := range dk.values {
					k.AddValue(v)
				}
				if dk.HasValues() {
					log.WithFields(logrus.Fields{"header": dh.Name(), "key": dk.Name()}).Debug("Filled empty key from defaults")
				}
			}
		}
	}
}
