// Package componentregistry provides explicit startup registration of the
// built-in component descriptor catalog and the ready-to-use pipeline
// templates. Registration is an explicit init step with no reliance on
// import side effects or load order.
//
// The catalog declares descriptors only: names, provided context keys,
// required parameters, external package requirements, and cache-relevant
// configuration keys. The concrete processing algorithms live in separate
// modules and implement component.Component directly.
package componentregistry

import (
	"github.com/kpe/rasa-nlu/component"
	pkgerrors "github.com/kpe/rasa-nlu/errors"
	"github.com/kpe/rasa-nlu/pipeline"
)

// builtinDescriptors returns the descriptor catalog, grouped by concern:
// language backends, tokenizers, featurizers, entity extractors, intent
// classifiers.
func builtinDescriptors() []component.Descriptor {
	return []component.Descriptor{
		// Language backends
		{
			Name: "nlp_spacy",
			Provides: map[component.Stage][]string{
				component.StageInit:    {"spacy_nlp"},
				component.StageProcess: {"spacy_doc"},
			},
			Requires: map[component.Stage][]string{
				component.StageInit:    {"language"},
				component.StageProcess: {"text", "spacy_nlp"},
			},
			Requirements: []string{"spacy"},
			ConfigKeys:   []string{"language", "fine_tune_spacy_ner"},
		},
		{
			Name: "nlp_mitie",
			Provides: map[component.Stage][]string{
				component.StageInit: {"mitie_feature_extractor"},
			},
			Requires: map[component.Stage][]string{
				component.StageInit: {"mitie_file"},
			},
			Requirements: []string{"mitie"},
			ConfigKeys:   []string{"mitie_file"},
		},

		// Tokenizers
		{
			Name: "tokenizer_whitespace",
			Provides: map[component.Stage][]string{
				component.StageTrain:   {"tokens"},
				component.StageProcess: {"tokens"},
			},
			Requires: map[component.Stage][]string{
				component.StageTrain:   {"training_data"},
				component.StageProcess: {"text"},
			},
		},
		{
			Name: "tokenizer_spacy",
			Provides: map[component.Stage][]string{
				component.StageTrain:   {"tokens"},
				component.StageProcess: {"tokens"},
			},
			Requires: map[component.Stage][]string{
				component.StageTrain:   {"training_data", "spacy_nlp"},
				component.StageProcess: {"spacy_doc"},
			},
			Requirements: []string{"spacy"},
		},
		{
			Name: "tokenizer_mitie",
			Provides: map[component.Stage][]string{
				component.StageTrain:   {"tokens"},
				component.StageProcess: {"tokens"},
			},
			Requires: map[component.Stage][]string{
				component.StageTrain:   {"training_data"},
				component.StageProcess: {"text"},
			},
			Requirements: []string{"mitie"},
		},

		// Featurizers
		{
			Name: "intent_featurizer_spacy",
			Provides: map[component.Stage][]string{
				component.StageTrain:   {"intent_features"},
				component.StageProcess: {"intent_features"},
			},
			Requires: map[component.Stage][]string{
				component.StageTrain:   {"training_data", "spacy_nlp"},
				component.StageProcess: {"spacy_doc"},
			},
			Requirements: []string{"spacy", "numpy"},
		},
		{
			Name: "intent_featurizer_mitie",
			Provides: map[component.Stage][]string{
				component.StageTrain:   {"intent_features"},
				component.StageProcess: {"intent_features"},
			},
			Requires: map[component.Stage][]string{
				component.StageTrain:   {"training_data", "mitie_feature_extractor"},
				component.StageProcess: {"tokens", "mitie_feature_extractor"},
			},
			Requirements: []string{"mitie", "numpy"},
		},
		{
			Name: "intent_entity_featurizer_regex",
			Provides: map[component.Stage][]string{
				component.StageTrain:   {"regex_features"},
				component.StageProcess: {"regex_features"},
			},
			Requires: map[component.Stage][]string{
				component.StageTrain:   {"training_data"},
				component.StageProcess: {"tokens"},
			},
		},

		// Entity extractors
		{
			Name: "ner_crf",
			Provides: map[component.Stage][]string{
				component.StageProcess: {"entities"},
			},
			Requires: map[component.Stage][]string{
				component.StageTrain:   {"training_data", "tokens"},
				component.StageProcess: {"tokens"},
			},
			Requirements: []string{"sklearn_crfsuite"},
		},
		{
			Name: "ner_mitie",
			Provides: map[component.Stage][]string{
				component.StageProcess: {"entities"},
			},
			Requires: map[component.Stage][]string{
				component.StageTrain:   {"training_data", "mitie_feature_extractor"},
				component.StageProcess: {"tokens", "mitie_feature_extractor"},
			},
			Requirements: []string{"mitie"},
		},
		{
			Name: "ner_spacy",
			Provides: map[component.Stage][]string{
				component.StageProcess: {"entities"},
			},
			Requires: map[component.Stage][]string{
				component.StageProcess: {"spacy_doc"},
			},
			Requirements: []string{"spacy"},
			ConfigKeys:   []string{"fine_tune_spacy_ner"},
		},
		{
			Name: "ner_synonyms",
			Provides: map[component.Stage][]string{
				component.StageTrain:   {"entity_synonyms"},
				component.StageProcess: {"entities"},
			},
			Requires: map[component.Stage][]string{
				component.StageTrain:   {"training_data"},
				component.StageProcess: {"entities"},
			},
		},

		// Intent classifiers
		{
			Name: "intent_classifier_keyword",
			Provides: map[component.Stage][]string{
				component.StageProcess: {"intent"},
			},
			Requires: map[component.Stage][]string{
				component.StageProcess: {"text"},
			},
		},
		{
			Name: "intent_classifier_mitie",
			Provides: map[component.Stage][]string{
				component.StageProcess: {"intent"},
			},
			Requires: map[component.Stage][]string{
				component.StageTrain:   {"training_data", "mitie_feature_extractor"},
				component.StageProcess: {"tokens", "mitie_feature_extractor"},
			},
			Requirements: []string{"mitie"},
		},
		{
			Name: "intent_classifier_sklearn",
			Provides: map[component.Stage][]string{
				component.StageProcess: {"intent"},
			},
			Requires: map[component.Stage][]string{
				component.StageTrain:   {"training_data", "intent_features"},
				component.StageProcess: {"intent_features"},
			},
			Requirements: []string{"sklearn", "numpy"},
		},
	}
}

// Register installs the built-in descriptor catalog into the registry.
func Register(registry *component.Registry) error {
	if registry == nil {
		return pkgerrors.WrapFatal(
			pkgerrors.ErrInvalidConfig,
			"ComponentRegistry", "Register", "registry validation")
	}

	for _, desc := range builtinDescriptors() {
		registration := &component.Registration{
			Descriptor: desc,
			Factory:    component.BaseFactory(desc),
			Loader:     component.BaseLoader(desc),
		}
		if err := registry.Register(registration); err != nil {
			return pkgerrors.Wrap(err, "ComponentRegistry", "Register",
				"'"+desc.Name+"' registration")
		}
	}
	return nil
}

// BuiltinTemplates returns the ready-to-use pipeline template catalog.
func BuiltinTemplates() (*pipeline.Catalog, error) {
	catalog := pipeline.NewCatalog()

	templates := map[string][]string{
		"spacy_sklearn": {
			"nlp_spacy",
			"tokenizer_spacy",
			"intent_featurizer_spacy",
			"intent_entity_featurizer_regex",
			"ner_crf",
			"ner_synonyms",
			"intent_classifier_sklearn",
		},
		"mitie": {
			"nlp_mitie",
			"tokenizer_mitie",
			"ner_mitie",
			"ner_synonyms",
			"intent_entity_featurizer_regex",
			"intent_classifier_mitie",
		},
		"mitie_sklearn": {
			"nlp_mitie",
			"tokenizer_mitie",
			"ner_mitie",
			"ner_synonyms",
			"intent_entity_featurizer_regex",
			"intent_featurizer_mitie",
			"intent_classifier_sklearn",
		},
		"keyword": {
			"intent_classifier_keyword",
		},
		pipeline.AllComponentsTemplate: {
			"nlp_spacy",
			"nlp_mitie",
			"tokenizer_whitespace",
			"tokenizer_spacy",
			"tokenizer_mitie",
			"intent_featurizer_spacy",
			"intent_featurizer_mitie",
			"intent_entity_featurizer_regex",
			"ner_crf",
			"ner_mitie",
			"ner_spacy",
			"ner_synonyms",
			"intent_classifier_keyword",
			"intent_classifier_mitie",
			"intent_classifier_sklearn",
		},
	}

	for name, components := range templates {
		if err := catalog.Register(name, components); err != nil {
			return nil, pkgerrors.Wrap(err, "ComponentRegistry", "BuiltinTemplates",
				"'"+name+"' template registration")
		}
	}
	return catalog, nil
}
