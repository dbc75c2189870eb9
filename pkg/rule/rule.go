// Package rule holds the static tables of deprecated Kubernetes API rules.
// The tables are ordered slices rather than maps so that rule application
// order, and therefore report output, is deterministic across runs.
package rule

import "regexp"

// ManifestRule matches a manifest file that uses a deprecated apiVersion
// together with one of the kinds served by that group version. APIVersion
// and Kind are matched independently against the whole file.
type ManifestRule struct {
	ID          string
	APIVersion  *regexp.Regexp
	Kind        *regexp.Regexp
	Replacement string
}

// ImportRule matches a Go source file importing a superseded client package.
// Path is matched as a literal substring.
type ImportRule struct {
	ID          string
	Path        string
	Replacement string
}

// UsageRule matches a deprecated call pattern in Go source.
type UsageRule struct {
	ID          string
	Pattern     *regexp.Regexp
	Replacement string
}

var manifestRules = []*ManifestRule{
	{
		ID:          "extensions-v1beta1-workload",
		APIVersion:  regexp.MustCompile(`^extensions/v1beta1$`),
		Kind:        regexp.MustCompile(`^(Deployment|DaemonSet|ReplicaSet)$`),
		Replacement: "use apps/v1",
	},
	{
		ID:          "extensions-v1beta1-ingress",
		APIVersion:  regexp.MustCompile(`^extensions/v1beta1$`),
		Kind:        regexp.MustCompile(`^Ingress$`),
		Replacement: "use networking.k8s.io/v1",
	},
	{
		ID:          "extensions-v1beta1-networkpolicy",
		APIVersion:  regexp.MustCompile(`^extensions/v1beta1$`),
		Kind:        regexp.MustCompile(`^NetworkPolicy$`),
		Replacement: "use networking.k8s.io/v1",
	},
	{
		ID:          "extensions-v1beta1-podsecuritypolicy",
		APIVersion:  regexp.MustCompile(`^extensions/v1beta1$`),
		Kind:        regexp.MustCompile(`^PodSecurityPolicy$`),
		Replacement: "PodSecurityPolicy was removed in v1.25; use Pod Security Admission",
	},
	{
		ID:          "apps-v1beta-workload",
		APIVersion:  regexp.MustCompile(`^apps/v1beta[12]$`),
		Kind:        regexp.MustCompile(`^(Deployment|StatefulSet|DaemonSet|ReplicaSet)$`),
		Replacement: "use apps/v1",
	},
	{
		ID:          "networking-v1beta1-ingress",
		APIVersion:  regexp.MustCompile(`^networking\.k8s\.io/v1beta1$`),
		Kind:        regexp.MustCompile(`^(Ingress|IngressClass)$`),
		Replacement: "use networking.k8s.io/v1",
	},
	{
		ID:          "rbac-v1beta1",
		APIVersion:  regexp.MustCompile(`^rbac\.authorization\.k8s\.io/v1beta1$`),
		Kind:        regexp.MustCompile(`^(Role|ClusterRole|RoleBinding|ClusterRoleBinding)$`),
		Replacement: "use rbac.authorization.k8s.io/v1",
	},
	{
		ID:          "apiextensions-v1beta1-crd",
		APIVersion:  regexp.MustCompile(`^apiextensions\.k8s\.io/v1beta1$`),
		Kind:        regexp.MustCompile(`^CustomResourceDefinition$`),
		Replacement: "use apiextensions.k8s.io/v1",
	},
	{
		ID:          "admissionregistration-v1beta1-webhook",
		APIVersion:  regexp.MustCompile(`^admissionregistration\.k8s\.io/v1beta1$`),
		Kind:        regexp.MustCompile(`^(ValidatingWebhookConfiguration|MutatingWebhookConfiguration)$`),
		Replacement: "use admissionregistration.k8s.io/v1",
	},
	{
		ID:          "policy-v1beta1-pdb",
		APIVersion:  regexp.MustCompile(`^policy/v1beta1$`),
		Kind:        regexp.MustCompile(`^PodDisruptionBudget$`),
		Replacement: "use policy/v1",
	},
	{
		ID:          "batch-v1beta1-cronjob",
		APIVersion:  regexp.MustCompile(`^batch/v1beta1$`),
		Kind:        regexp.MustCompile(`^CronJob$`),
		Replacement: "use batch/v1",
	},
	{
		ID:          "storage-v1beta1",
		APIVersion:  regexp.MustCompile(`^storage\.k8s\.io/v1beta1$`),
		Kind:        regexp.MustCompile(`^(StorageClass|CSIDriver|CSINode|VolumeAttachment)$`),
		Replacement: "use storage.k8s.io/v1",
	},
	{
		ID:          "autoscaling-v2beta-hpa",
		APIVersion:  regexp.MustCompile(`^autoscaling/v2beta[12]$`),
		Kind:        regexp.MustCompile(`^HorizontalPodAutoscaler$`),
		Replacement: "use autoscaling/v2",
	},
	{
		ID:          "coordination-v1beta1-lease",
		APIVersion:  regexp.MustCompile(`^coordination\.k8s\.io/v1beta1$`),
		Kind:        regexp.MustCompile(`^Lease$`),
		Replacement: "use coordination.k8s.io/v1",
	},
	{
		ID:          "scheduling-v1beta1-priorityclass",
		APIVersion:  regexp.MustCompile(`^scheduling\.k8s\.io/v1beta1$`),
		Kind:        regexp.MustCompile(`^PriorityClass$`),
		Replacement: "use scheduling.k8s.io/v1",
	},
	{
		ID:          "certificates-v1beta1-csr",
		APIVersion:  regexp.MustCompile(`^certificates\.k8s\.io/v1beta1$`),
		Kind:        regexp.MustCompile(`^CertificateSigningRequest$`),
		Replacement: "use certificates.k8s.io/v1",
	},
	{
		ID:          "discovery-v1beta1-endpointslice",
		APIVersion:  regexp.MustCompile(`^discovery\.k8s\.io/v1beta1$`),
		Kind:        regexp.MustCompile(`^EndpointSlice$`),
		Replacement: "use discovery.k8s.io/v1",
	},
}

var importRules = []*ImportRule{
	{
		ID:          "import-extensions-v1beta1",
		Path:        "k8s.io/api/extensions/v1beta1",
		Replacement: "use k8s.io/api/apps/v1 or k8s.io/api/networking/v1",
	},
	{
		ID:          "import-apps-v1beta1",
		Path:        "k8s.io/api/apps/v1beta1",
		Replacement: "use k8s.io/api/apps/v1",
	},
	{
		ID:          "import-apps-v1beta2",
		Path:        "k8s.io/api/apps/v1beta2",
		Replacement: "use k8s.io/api/apps/v1",
	},
	{
		ID:          "import-networking-v1beta1",
		Path:        "k8s.io/api/networking/v1beta1",
		Replacement: "use k8s.io/api/networking/v1",
	},
	{
		ID:          "import-batch-v1beta1",
		Path:        "k8s.io/api/batch/v1beta1",
		Replacement: "use k8s.io/api/batch/v1",
	},
	{
		ID:          "import-policy-v1beta1",
		Path:        "k8s.io/api/policy/v1beta1",
		Replacement: "use k8s.io/api/policy/v1",
	},
	{
		ID:          "import-rbac-v1beta1",
		Path:        "k8s.io/api/rbac/v1beta1",
		Replacement: "use k8s.io/api/rbac/v1",
	},
	{
		ID:          "import-autoscaling-v2beta1",
		Path:        "k8s.io/api/autoscaling/v2beta1",
		Replacement: "use k8s.io/api/autoscaling/v2",
	},
	{
		ID:          "import-autoscaling-v2beta2",
		Path:        "k8s.io/api/autoscaling/v2beta2",
		Replacement: "use k8s.io/api/autoscaling/v2",
	},
	{
		ID:          "import-storage-v1beta1",
		Path:        "k8s.io/api/storage/v1beta1",
		Replacement: "use k8s.io/api/storage/v1",
	},
	{
		ID:          "import-certificates-v1beta1",
		Path:        "k8s.io/api/certificates/v1beta1",
		Replacement: "use k8s.io/api/certificates/v1",
	},
	{
		ID:          "import-apiextensions-v1beta1",
		Path:        "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1beta1",
		Replacement: "use k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1",
	},
}

var usageRules = []*UsageRule{
	{
		ID:          "usage-beta-scheme-registration",
		Pattern:     regexp.MustCompile(`v\d+beta\d+\.AddToScheme`),
		Replacement: "register the current group version with the scheme",
	},
	{
		ID:          "usage-beta-client-accessor",
		Pattern:     regexp.MustCompile(`(ExtensionsV1beta1|AppsV1beta1|AppsV1beta2|NetworkingV1beta1|BatchV1beta1|PolicyV1beta1)\(\)`),
		Replacement: "use the v1 typed client accessor (e.g. AppsV1(), NetworkingV1())",
	},
}

// ManifestRules returns the manifest rule table in application order.
func ManifestRules() []*ManifestRule {
	return manifestRules
}

// ImportRules returns the import rule table in application order.
func ImportRules() []*ImportRule {
	return importRules
}

// UsageRules returns the usage-pattern rule table in application order.
func UsageRules() []*UsageRule {
	return usageRules
}
