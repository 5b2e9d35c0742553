// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/responsesdoc

package responsesdoc

const (
	// NamespaceAPIContract is the AMF API contract vocabulary namespace.
	NamespaceAPIContract = "http://a.ml/vocabularies/apiContract#"
	// NamespaceCore is the AMF core vocabulary namespace.
	NamespaceCore = "http://a.ml/vocabularies/core#"
	// NamespaceDocument is the AMF document vocabulary namespace.
	NamespaceDocument = "http://a.ml/vocabularies/document#"
	// NamespaceShapes is the AMF shapes vocabulary namespace.
	NamespaceShapes = "http://a.ml/vocabularies/shapes#"
	// NamespaceData is the AMF data node vocabulary namespace.
	NamespaceData = "http://a.ml/vocabularies/data#"
	// NamespaceShacl is the W3C SHACL namespace.
	NamespaceShacl = "http://www.w3.org/ns/shacl#"
)

// Term is a full vocabulary IRI naming one semantic property.
type Term string

// Vocabulary is the immutable term table used to address graph node properties.
type Vocabulary struct {
	StatusCode             Term
	Name                   Term
	Description            Term
	Header                 Term
	Payload                Term
	Link                   Term
	SupportedOperation     Term
	Method                 Term
	OperationID            Term
	Mapping                Term
	LinkExpression         Term
	TemplateVariable       Term
	CustomDomainProperties Term
	ExtensionName          Term
	DataValue              Term
	MediaType              Term
	Schema                 Term
	ShapeName              Term
	Required               Term
	Returns                Term
	Expects                Term
	Endpoint               Term
	Path                   Term
	Encodes                Term
}

// DefaultVocabulary returns the AMF vocabulary terms.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		StatusCode:             NamespaceAPIContract + "statusCode",
		Name:                   NamespaceCore + "name",
		Description:            NamespaceCore + "description",
		Header:                 NamespaceAPIContract + "header",
		Payload:                NamespaceAPIContract + "payload",
		Link:                   NamespaceAPIContract + "link",
		SupportedOperation:     NamespaceAPIContract + "supportedOperation",
		Method:                 NamespaceAPIContract + "method",
		OperationID:            NamespaceAPIContract + "operationId",
		Mapping:                NamespaceAPIContract + "mapping",
		LinkExpression:         NamespaceAPIContract + "linkExpression",
		TemplateVariable:       NamespaceAPIContract + "templateVariable",
		CustomDomainProperties: NamespaceDocument + "customDomainProperties",
		ExtensionName:          NamespaceCore + "extensionName",
		DataValue:              NamespaceData + "value",
		MediaType:              NamespaceCore + "mediaType",
		Schema:                 NamespaceShapes + "schema",
		ShapeName:              NamespaceShacl + "name",
		Required:               NamespaceAPIContract + "required",
		Returns:                NamespaceAPIContract + "returns",
		Expects:                NamespaceAPIContract + "expects",
		Endpoint:               NamespaceAPIContract + "endpoint",
		Path:                   NamespaceAPIContract + "path",
		Encodes:                NamespaceDocument + "encodes",
	}
}

// terms lists every term of the vocabulary in declaration order.
func (vocab Vocabulary) terms() []Term {
	return []Term{
		vocab.StatusCode,
		vocab.Name,
		vocab.Description,
		vocab.Header,
		vocab.Payload,
		vocab.Link,
		vocab.SupportedOperation,
		vocab.Method,
		vocab.OperationID,
		vocab.Mapping,
		vocab.LinkExpression,
		vocab.TemplateVariable,
		vocab.CustomDomainProperties,
		vocab.ExtensionName,
		vocab.DataValue,
		vocab.MediaType,
		vocab.Schema,
		vocab.ShapeName,
		vocab.Required,
		vocab.Returns,
		vocab.Expects,
		vocab.Endpoint,
		vocab.Path,
		vocab.Encodes,
	}
}
