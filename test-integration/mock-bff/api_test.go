package integration

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/stacklok/model-registry-bff/internal/httpclient"
	"github.com/stacklok/model-registry-bff/internal/mocks"
	"github.com/stacklok/model-registry-bff/internal/models"
)

var _ = Describe("Mock BFF API", func() {
	Context("registered models", func() {
		It("lists every registered model in one page", func() {
			list, err := httpclient.GetData[models.List[models.RegisteredModel]](ctx, client, registryURL("/registered_models"))
			Expect(err).NotTo(HaveOccurred())
			Expect(list.Items).To(HaveLen(3))
			Expect(list.Size).To(Equal(3))
			Expect(list.PageSize).To(Equal(3))
		})

		It("returns labels as empty string properties", func() {
			model, err := httpclient.GetData[models.RegisteredModel](ctx, client, registryURL("/registered_models/2"))
			Expect(err).NotTo(HaveOccurred())
			Expect(model.CustomProperties).To(Equal(mocks.CreateModelRegistryLabelsObject([]string{"Credit", "Scoring"})))
		})

		It("reports missing models with an error envelope", func() {
			_, err := httpclient.GetData[models.RegisteredModel](ctx, client, registryURL("/registered_models/404"))
			Expect(err).To(HaveOccurred())
			Expect(httpclient.IsNotFound(err)).To(BeTrue())

			var httpErr *httpclient.HTTPError
			Expect(err).To(BeAssignableToTypeOf(httpErr))
			Expect(err.(*httpclient.HTTPError).Code).To(Equal("404"))
		})
	})

	Context("model versions and artifacts", func() {
		It("walks from a model to its artifacts", func() {
			versions, err := httpclient.GetData[models.List[models.ModelVersion]](ctx, client,
				registryURL("/registered_models/1/versions"))
			Expect(err).NotTo(HaveOccurred())
			Expect(versions.Items).To(HaveLen(2))

			for _, version := range versions.Items {
				artifacts, err := httpclient.GetData[models.List[models.ModelArtifact]](ctx, client,
					registryURL("/model_versions/"+version.ID+"/artifacts"))
				Expect(err).NotTo(HaveOccurred())
				Expect(artifacts.Items).To(HaveLen(1))
				Expect(artifacts.Items[0].ArtifactType).To(Equal(models.ModelArtifactType))
			}
		})

		It("keeps typed custom properties", func() {
			version, err := httpclient.GetData[models.ModelVersion](ctx, client, registryURL("/model_versions/3"))
			Expect(err).NotTo(HaveOccurred())
			Expect(version.CustomProperties).To(HaveKeyWithValue("accuracy", models.NewDoubleValue(0.87)))
		})
	})

	Context("registries", func() {
		It("lists the configured registries", func() {
			registries, err := httpclient.GetData[[]models.ModelRegistry](ctx, client, server.URL+"/api/v1/model_registry")
			Expect(err).NotTo(HaveOccurred())
			Expect(registries).To(ConsistOf(models.ModelRegistry{Name: registryName}))
		})

		It("rejects unknown registries", func() {
			_, err := client.Get(ctx, server.URL+"/api/v1/model_registry/unknown/registered_models")
			Expect(httpclient.IsNotFound(err)).To(BeTrue())
		})
	})

	Context("fixture reload", func() {
		It("serves the replaced fixture set", func() {
			DeferCleanup(func() {
				Expect(svc.SetFixtures(ctx, mocks.DefaultFixtureSet())).To(Succeed())
			})

			replacement := &mocks.FixtureSet{
				RegisteredModels: []models.RegisteredModel{
					mocks.NewTestRegisteredModel("reloaded", mocks.WithModelID("100")),
				},
			}
			Expect(svc.SetFixtures(ctx, replacement)).To(Succeed())

			list, err := httpclient.GetData[models.List[models.RegisteredModel]](ctx, client, registryURL("/registered_models"))
			Expect(err).NotTo(HaveOccurred())
			Expect(list.Items).To(HaveLen(1))
			Expect(list.Items[0].Name).To(Equal("reloaded"))
		})
	})
})
